// SPDX-License-Identifier: MIT

package level2

// Precision-specific instantiations under the conventional BLAS names:
// S = float32, D = float64, C = complex64, Z = complex128.
var (
	Sgemv = Gemv[float32]
	Dgemv = Gemv[float64]
	Cgemv = Gemv[complex64]
	Zgemv = Gemv[complex128]

	Sger  = Ger[float32]
	Dger  = Ger[float64]
	Cgeru = Geru[complex64]
	Zgeru = Geru[complex128]
	Cgerc = Gerc[complex64]
	Zgerc = Gerc[complex128]

	Ssymv = Symv[float32]
	Dsymv = Symv[float64]
	Chemv = Hemv[complex64]
	Zhemv = Hemv[complex128]

	Ssyr  = Syr[float32]
	Dsyr  = Syr[float64]
	Cher  = Her[complex64]
	Zher  = Her[complex128]
	Ssyr2 = Syr2[float32]
	Dsyr2 = Syr2[float64]
	Cher2 = Her2[complex64]
	Zher2 = Her2[complex128]

	Strmv = Trmv[float32]
	Dtrmv = Trmv[float64]
	Ctrmv = Trmv[complex64]
	Ztrmv = Trmv[complex128]
	Strsv = Trsv[float32]
	Dtrsv = Trsv[float64]
	Ctrsv = Trsv[complex64]
	Ztrsv = Trsv[complex128]
)
