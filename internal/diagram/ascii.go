package diagram

import (
	"fmt"
	"strings"
)

// SectionData holds everything needed to draw a designed section.
type SectionData struct {
	// Geometry (mm)
	Width       float64
	Depth       float64
	FlangeWidth float64 // zero for rectangular sections
	FlangeDepth float64

	// Neutral axis from the compression face (mm)
	Xu    float64
	XuMax float64

	// Steel positions from the compression face (mm) and areas (mm²)
	TensionDepth float64
	TensionArea  float64
	CompDepth    float64
	CompArea     float64 // zero when singly reinforced

	// Strains
	EpsilonCU float64
	EpsilonSc float64

	// Concrete design stress 0.36 fck (N/mm²)
	BlockStress float64
}

// DrawSection renders an ASCII cross section with the compression block
// shaded down to the neutral axis.
func DrawSection(data SectionData) string {
	var sb strings.Builder

	const widthChars = 30
	const heightChars = 20

	xuLine := int(data.Xu / data.Depth * heightChars)
	flangeLine := -1
	if data.FlangeDepth > 0 {
		flangeLine = int(data.FlangeDepth / data.Depth * heightChars)
	}
	tensionLine := int(data.TensionDepth / data.Depth * heightChars)
	compLine := -1
	if data.CompArea > 0 {
		compLine = int(data.CompDepth / data.Depth * heightChars)
	}

	sb.WriteString("\n  BEAM SECTION\n")
	sb.WriteString("  ────────────\n")

	for i := 0; i <= heightChars; i++ {
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case i == heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		default:
			// The shaded fill is multi-byte; splice bar markers on rune
			// boundaries, not byte offsets.
			fill := []rune(strings.Repeat(" ", widthChars))
			if i <= xuLine {
				fill = []rune(strings.Repeat("░", widthChars))
			}
			mid := widthChars / 2
			if i == compLine {
				copy(fill[mid-2:], []rune("●──●"))
			}
			if i == tensionLine {
				copy(fill[mid-3:], []rune("●────●"))
			}
			sb.WriteString(fmt.Sprintf("  │%s│", string(fill)))
		}

		switch {
		case i == xuLine:
			sb.WriteString(fmt.Sprintf(" ◄─ N.A. (xu = %.1f mm)", data.Xu))
		case i == flangeLine:
			sb.WriteString(fmt.Sprintf(" ◄─ flange/web boundary (Df = %.0f mm)", data.FlangeDepth))
		case i == tensionLine && i > 0 && i < heightChars:
			sb.WriteString(fmt.Sprintf(" ◄─ Ast = %.1f mm²", data.TensionArea))
		case i == compLine:
			sb.WriteString(fmt.Sprintf(" ◄─ Asc = %.1f mm²", data.CompArea))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  ░░░ = compression zone to the neutral axis\n")
	sb.WriteString(fmt.Sprintf("  xu,max = %.1f mm, block stress 0.36·fck = %.2f N/mm²\n", data.XuMax, data.BlockStress))
	return sb.String()
}

// DrawStrain renders the linear strain distribution from εcu at the
// compression face through zero at the neutral axis.
func DrawStrain(data SectionData) string {
	var sb strings.Builder

	const height = 15
	const barWidth = 30

	sb.WriteString("\n  STRAIN DISTRIBUTION\n")
	sb.WriteString("  ───────────────────\n\n")

	// Zero applied moment leaves no compression zone to draw a wedge from.
	if data.Xu <= 0 {
		sb.WriteString("  No compression zone (xu = 0); strain diagram omitted.\n")
		return sb.String()
	}

	epsT := data.EpsilonCU * (data.TensionDepth - data.Xu) / data.Xu
	maxStrain := data.EpsilonCU
	if epsT > maxStrain {
		maxStrain = epsT
	}
	scale := barWidth / maxStrain

	xuLine := int(data.Xu / data.Depth * height)
	tensionLine := int(data.TensionDepth / data.Depth * height)

	for i := 0; i <= height; i++ {
		depth := float64(i) / height * data.Depth
		var strain float64
		if depth <= data.Xu {
			strain = data.EpsilonCU * (data.Xu - depth) / data.Xu
		} else {
			strain = data.EpsilonCU * (depth - data.Xu) / data.Xu
		}
		bar := strings.Repeat("█", int(strain*scale))

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  Top    │%s▶ εcu = %.4f\n", bar, data.EpsilonCU))
		case i == xuLine:
			sb.WriteString("  N.A.   ├───── (ε = 0)\n")
		case i == tensionLine:
			sb.WriteString(fmt.Sprintf("  Steel  │%s▶ εst = %.4f\n", bar, epsT))
		case i == height:
			sb.WriteString(fmt.Sprintf("  Bottom │%s\n", bar))
		default:
			sb.WriteString(fmt.Sprintf("         │%s\n", bar))
		}
	}

	if data.CompArea > 0 {
		sb.WriteString(fmt.Sprintf("\n  ε'sc = %.5f at d' = %.0f mm\n", data.EpsilonSc, data.CompDepth))
	}
	return sb.String()
}
