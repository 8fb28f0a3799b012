package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shouni/memory-poster-kit/pkg/analysis"
	"github.com/shouni/memory-poster-kit/pkg/domain"
	"github.com/shouni/memory-poster-kit/pkg/imgutil"
	"github.com/shouni/memory-poster-kit/pkg/poster"
	"github.com/shouni/memory-poster-kit/pkg/utils"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a poster from a city memory",
		Run:   runGenerate,
	}

	defaults := domain.DefaultParams()

	cmd.Flags().StringP("city", "c", "", "City name (required)")
	cmd.Flags().StringP("memory", "m", "", "Memory text (required)")
	cmd.Flags().StringP("out", "o", "", "Output file (default <city>_poster.png)")
	cmd.Flags().Int("size", poster.DefaultSize, "Poster side length in pixels")
	cmd.Flags().String("seed", "", "Manual seed (integer; malformed values fall back to 42)")
	cmd.Flags().Bool("auto-seed", true, "Derive the seed from city + memory text")
	cmd.Flags().String("format", "png", "Output format: png or jpeg")
	cmd.Flags().Int("quality", 85, "JPEG quality (1-100, jpeg format only)")
	cmd.Flags().Bool("report", false, "Print the analysis report as JSON")
	cmd.Flags().BoolP("verbose", "v", false, "Log derived layer parameters")

	cmd.Flags().Float64("mist-strength", defaults.MistStrength, "Mist strength (0-1)")
	cmd.Flags().Float64("mist-smoothness", defaults.MistSmoothness, "Mist gradient smoothness (0-1)")
	cmd.Flags().Float64("mist-glow", defaults.MistGlow, "Glow radius (0-1)")
	cmd.Flags().Float64("wc-spread", defaults.WatercolorSpread, "Watercolor spread radius (0-1)")
	cmd.Flags().Int("wc-layers", defaults.WatercolorLayers, "Watercolor layer count (1-6)")
	cmd.Flags().Float64("wc-saturation", defaults.WatercolorSaturation, "Ink saturation (0-1)")
	cmd.Flags().Float64("pastel-softness", defaults.PastelSoftness, "Pastel softness (0-1)")
	cmd.Flags().Float64("pastel-grain", defaults.PastelGrain, "Grain amount (0-1)")
	cmd.Flags().Float64("pastel-blend", defaults.PastelBlend, "Pastel blend ratio (0-1)")
	cmd.Flags().Float64("emotion-link", defaults.EmotionLink, "Emotion link strength (0-1)")

	cmd.MarkFlagRequired("city")
	cmd.MarkFlagRequired("memory")

	// スライダー系は MEMORY_POSTER_* 環境変数と設定ファイルでも上書きできる
	for _, name := range []string{
		"mist-strength", "mist-smoothness", "mist-glow",
		"wc-spread", "wc-layers", "wc-saturation",
		"pastel-softness", "pastel-grain", "pastel-blend",
		"emotion-link", "size", "format", "quality",
	} {
		viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	viper.SetEnvPrefix("MEMORY_POSTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetConfigName("memory-poster")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // 設定ファイルは任意

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	city, _ := cmd.Flags().GetString("city")
	memory, _ := cmd.Flags().GetString("memory")
	out, _ := cmd.Flags().GetString("out")
	seedRaw, _ := cmd.Flags().GetString("seed")
	autoSeed, _ := cmd.Flags().GetBool("auto-seed")
	printReport, _ := cmd.Flags().GetBool("report")
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	params := paramsFromConfig()
	if cmd.Flags().Changed("seed") {
		params.Seed = utils.ParseSeed(seedRaw)
	} else if autoSeed {
		params.Seed = analysis.AutoSeed(city, memory)
	}

	report := analysis.Analyze(city, memory)
	logger.Info("analyzed memory", "mood", report.Mood, "intensity", report.Intensity, "seed", params.Seed)
	if printReport {
		b, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(b))
	}

	gen, err := poster.NewGenerator(viper.GetInt("size"), logger)
	if err != nil {
		exitErr("init generator", err)
	}

	resp, err := gen.Generate(domain.PosterRequest{
		City:   city,
		Memory: memory,
		Mood:   report.MoodContext(),
		Params: params,
	})
	if err != nil {
		exitErr("generate", err)
	}

	data := resp.Data
	ext := ".png"
	if strings.EqualFold(viper.GetString("format"), "jpeg") {
		data, err = imgutil.CompressToJPEG(resp.Data, viper.GetInt("quality"))
		if err != nil {
			exitErr("jpeg compress", err)
		}
		ext = ".jpg"
	}

	if out == "" {
		out = sanitizeFilename(city) + "_poster" + ext
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		exitErr("write output", err)
	}
	logger.Info("poster written", "path", out, "bytes", len(data), "seed", resp.UsedSeed)
}

// paramsFromConfig は viper 経由の設定（フラグ・環境変数・設定ファイル）から
// 生成パラメータを組み立てます。レンジ外のスライダー値は [0,1] へ丸めます。
func paramsFromConfig() domain.GenerationParams {
	p := domain.GenerationParams{
		MistStrength:         utils.ClampUnit(viper.GetFloat64("mist-strength")),
		MistSmoothness:       utils.ClampUnit(viper.GetFloat64("mist-smoothness")),
		MistGlow:             utils.ClampUnit(viper.GetFloat64("mist-glow")),
		WatercolorSpread:     utils.ClampUnit(viper.GetFloat64("wc-spread")),
		WatercolorLayers:     viper.GetInt("wc-layers"),
		WatercolorSaturation: utils.ClampUnit(viper.GetFloat64("wc-saturation")),
		PastelSoftness:       utils.ClampUnit(viper.GetFloat64("pastel-softness")),
		PastelGrain:          utils.ClampUnit(viper.GetFloat64("pastel-grain")),
		PastelBlend:          utils.ClampUnit(viper.GetFloat64("pastel-blend")),
		EmotionLink:          utils.ClampUnit(viper.GetFloat64("emotion-link")),
		Seed:                 utils.FallbackSeed,
	}
	if p.WatercolorLayers < 1 {
		p.WatercolorLayers = 1
	}
	if p.WatercolorLayers > 6 {
		p.WatercolorLayers = 6
	}
	return p
}

// sanitizeFilename は都市名をファイル名として安全な形へ整えます。
func sanitizeFilename(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '_'
		default:
			return -1
		}
	}, s)
	if s == "" {
		s = "city"
	}
	return s
}
