package codec

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const pdfImageName = "canvas"

// encodePDF writes a single page document the size of img, measured in
// points, with img embedded losslessly as its only content.
func encodePDF(w io.Writer, img image.Image, _ Options) error {
	var raw bytes.Buffer
	if err := png.Encode(&raw, img); err != nil {
		return err
	}

	size := img.Bounds().Size()
	width, height := float64(size.X), float64(size.Y)

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(pdfImageName, opts, &raw)
	doc.ImageOptions(pdfImageName, 0, 0, width, height, false, opts, 0, "")

	return doc.Output(w)
}
