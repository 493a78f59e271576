package qr

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"go-paylink/internal/shared/apperror"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrUnreadableQR covers semua mode kegagalan decode: buffer bukan image,
// tidak ada pola QR, atau payload gagal di-error-correct. Caller tidak
// perlu membedakan ketiganya.
var ErrUnreadableQR = apperror.New(
	apperror.CodeQRDecodeFailed,
	"Invalid or unreadable QR code",
	http.StatusBadRequest,
)

//go:generate mockgen -source=decoder.go -destination=mock/decoder_mock.go -package=mock
type Decoder interface {
	Decode(buf []byte) (string, error)
}

type decoder struct {
	reader gozxing.Reader
}

func NewDecoder() Decoder {
	return &decoder{reader: qrcode.NewQRCodeReader()}
}

// Decode membaca payload teks dari sebuah image buffer (PNG/JPEG).
// Hasil decode adalah untrusted text; tidak ada retry saat gagal.
func (d *decoder) Decode(buf []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return "", apperror.Wrap(err, ErrUnreadableQR.Code, ErrUnreadableQR.Message, ErrUnreadableQR.HTTPStatus)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", apperror.Wrap(err, ErrUnreadableQR.Code, ErrUnreadableQR.Message, ErrUnreadableQR.HTTPStatus)
	}

	result, err := d.reader.Decode(bmp, nil)
	if err != nil {
		return "", apperror.Wrap(err, ErrUnreadableQR.Code, ErrUnreadableQR.Message, ErrUnreadableQR.HTTPStatus)
	}

	return result.GetText(), nil
}
