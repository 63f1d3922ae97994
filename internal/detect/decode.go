package detect

import "image"

// decodeSegmentation converts a raw per-pixel classification buffer into a
// mask and a confidence score. buf holds one byte per pixel in row-major
// order, 1 = human/foreground. The mask uses a single-channel alpha layout
// (*image.Alpha): 0xFF for foreground, 0 for background; downstream
// compositors that want RGBA replicate the channel themselves.
//
// Confidence is the foreground fraction of the frame: an all-background
// buffer yields exactly 0, an all-foreground buffer exactly 1.
//
// A buffer shorter than w*h is a contract violation of the model
// capability; the resulting index panic is deliberately not recovered.
func decodeSegmentation(buf []byte, w, h int) (*image.Alpha, float64) {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	total := w * h
	foreground := 0
	for i := 0; i < total; i++ {
		if buf[i] == 1 {
			mask.Pix[i] = 0xff
			foreground++
		}
	}
	if total == 0 {
		return mask, 0
	}
	return mask, float64(foreground) / float64(total)
}
