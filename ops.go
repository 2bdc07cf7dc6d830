// seehuhn.de/go/pixmap - arithmetic on floating-point RGB images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixmap

// AddAssign replaces every pixel of img by the average of itself and the
// corresponding pixel of other.  Note that this is not a sum, unlike [Image.Add].
// The method returns img, to allow chaining.
//
// AddAssign panics if the two images have different sizes.
func (img *Image) AddAssign(other *Image) *Image {
	mustMatch("AddAssign", img, other)
	for i, c := range other.pix {
		img.pix[i] = img.pix[i].Add(c).Scale(0.5)
	}
	return img
}

// SubAssign subtracts other from img in place.
// Channels which would become negative are set to zero.
// The method returns img, to allow chaining.
//
// SubAssign panics if the two images have different sizes.
func (img *Image) SubAssign(other *Image) *Image {
	mustMatch("SubAssign", img, other)
	for i, c := range other.pix {
		img.pix[i] = img.pix[i].Sub(c)
	}
	return img
}

// Add returns a new image containing the unclamped, channel-wise sum
// of img and other.
//
// Add panics if the two images have different sizes.
func (img *Image) Add(other *Image) *Image {
	mustMatch("Add", img, other)
	res := img.Clone()
	for i, c := range other.pix {
		res.pix[i] = res.pix[i].Add(c)
	}
	return res
}

// Sub returns a new image containing the channel-wise difference img-other,
// clamped at zero.
//
// Sub panics if the two images have different sizes.
func (img *Image) Sub(other *Image) *Image {
	mustMatch("Sub", img, other)
	res := img.Clone()
	for i, c := range other.pix {
		res.pix[i] = res.pix[i].Sub(c)
	}
	return res
}

// Mul returns a new image containing the channel-wise product
// of img and other.
//
// Mul panics if the two images have different sizes.
func (img *Image) Mul(other *Image) *Image {
	mustMatch("Mul", img, other)
	res := img.Clone()
	for i, c := range other.pix {
		res.pix[i] = res.pix[i].Mul(c)
	}
	return res
}

// Scale returns a new image with all channels multiplied by s.
func (img *Image) Scale(s float32) *Image {
	res := img.Clone()
	for i, c := range res.pix {
		res.pix[i] = c.Scale(s)
	}
	return res
}

// GammaCorrect returns a new image where every channel value v has been
// replaced by 255*(v/255)^gamma.
func GammaCorrect(img *Image, gamma float64) *Image {
	res := New(img.width, img.height)
	for i, c := range img.pix {
		res.pix[i] = c.Gamma(gamma)
	}
	return res
}

// AlphaComposite blends fg over bg, returning fg*alpha + bg*(1-alpha).
// The result is not clamped, so alpha values outside [0, 1] extrapolate.
//
// AlphaComposite panics if the two images have different sizes.
func AlphaComposite(fg, bg *Image, alpha float32) *Image {
	mustMatch("AlphaComposite", fg, bg)
	return fg.Scale(alpha).Add(bg.Scale(1 - alpha))
}
