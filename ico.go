package main

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
)

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	bmpHeaderSize = 40
)

// andMaskSize returns the size of the 1bpp AND mask, rows padded to 32 bits.
func andMaskSize(w, h int) int {
	return (w + 31) / 32 * 4 * h
}

// encodeICO packs img as a single 32bpp BMP entry in an ICO container.
// The directory entry's data size covers the bitmap header and pixels only;
// the trailing AND mask is not counted, reproducing the reference app.ico layout.
func encodeICO(img image.Image) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixelSize := w * h * 4

	// ICO dimensions: 0 means 256 (or larger).
	bw, bh := byte(w), byte(h)
	if w >= 256 {
		bw = 0
	}
	if h >= 256 {
		bh = 0
	}

	buf := make([]byte, icoHeaderSize+icoEntrySize+bmpHeaderSize+pixelSize+andMaskSize(w, h))

	// ICONDIR header
	binary.LittleEndian.PutUint16(buf[0:], 0) // reserved
	binary.LittleEndian.PutUint16(buf[2:], 1) // type: ICO
	binary.LittleEndian.PutUint16(buf[4:], 1) // count: 1 image

	// ICONDIRENTRY
	off := icoHeaderSize
	buf[off+0] = bw                                                             // width
	buf[off+1] = bh                                                             // height
	buf[off+2] = 0                                                              // color count (0 for truecolor)
	buf[off+3] = 0                                                              // reserved
	binary.LittleEndian.PutUint16(buf[off+4:], 1)                               // planes
	binary.LittleEndian.PutUint16(buf[off+6:], 32)                              // bits per pixel
	binary.LittleEndian.PutUint32(buf[off+8:], uint32(bmpHeaderSize+pixelSize)) // data size
	binary.LittleEndian.PutUint32(buf[off+12:], icoHeaderSize+icoEntrySize)     // data offset

	// BITMAPINFOHEADER; height is doubled to account for the AND mask.
	off += icoEntrySize
	binary.LittleEndian.PutUint32(buf[off+0:], bmpHeaderSize)
	binary.LittleEndian.PutUint32(buf[off+4:], uint32(w))
	binary.LittleEndian.PutUint32(buf[off+8:], uint32(h*2))
	binary.LittleEndian.PutUint16(buf[off+12:], 1)  // planes
	binary.LittleEndian.PutUint16(buf[off+14:], 32) // bits per pixel
	binary.LittleEndian.PutUint32(buf[off+16:], 0)  // compression: BI_RGB
	binary.LittleEndian.PutUint32(buf[off+20:], uint32(pixelSize))
	// Resolution and palette counts stay zero.

	// Pixels, bottom-up, BGRA.
	off += bmpHeaderSize
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf[off+0] = c.B
			buf[off+1] = c.G
			buf[off+2] = c.R
			buf[off+3] = c.A
			off += 4
		}
	}

	// The AND mask is left zeroed: alpha already carries transparency.
	return buf
}

// writeICO encodes img and writes it to w in a single call.
func writeICO(w io.Writer, img image.Image) error {
	_, err := w.Write(encodeICO(img))
	return err
}

// saveICO creates or truncates path and writes img to it as an ICO file.
func saveICO(path string, img image.Image) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := writeICO(f, img); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
