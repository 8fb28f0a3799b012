// Package imgutil はポスター出力のエンコードに関するユーティリティです。
package imgutil

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
)

// EncodePNG は最終ラスターを可逆圧縮の PNG バイト列へエンコードします。
// 同じラスターからは常に同じバイト列が得られます。
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressToJPEG は PNG のポスターを配布向けに JPEG へ再圧縮します。
// JPEG は非可逆のため、再現性が必要な用途では PNG を使用してください。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
