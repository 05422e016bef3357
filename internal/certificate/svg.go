package certificate

import "fmt"

// RenderSVG draws the completion certificate on a fixed 1200x850 canvas:
// bordered frame, gradient accent and a circular seal. All coordinates and
// colors are presentational constants.
func RenderSVG(name, dateStr string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="850">
  <defs>
    <linearGradient id="g" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0%%" stop-color="#1e3a8a"/>
      <stop offset="100%%" stop-color="#0ea5e9"/>
    </linearGradient>
  </defs>
  <rect width="100%%" height="100%%" fill="#0b1220"/>
  <rect x="40" y="40" width="1120" height="770" rx="24" fill="none" stroke="url(#g)" stroke-width="6"/>
  <text x="600" y="160" text-anchor="middle" fill="#e2e8f0" font-size="42" font-family="Inter, sans-serif">Certificate of Completion</text>
  <text x="600" y="300" text-anchor="middle" fill="#93c5fd" font-size="28" font-family="Inter, sans-serif">This certifies that</text>
  <text x="600" y="380" text-anchor="middle" fill="#f8fafc" font-size="56" font-weight="700" font-family="Inter, sans-serif">%s</text>
  <text x="600" y="460" text-anchor="middle" fill="#cbd5e1" font-size="24" font-family="Inter, sans-serif">has successfully completed the</text>
  <text x="600" y="505" text-anchor="middle" fill="#cbd5e1" font-size="28" font-family="Inter, sans-serif">AptLearn – 15-Day Interview Preparation Challenge</text>
  <text x="600" y="590" text-anchor="middle" fill="#93c5fd" font-size="20" font-family="Inter, sans-serif">Issued on %s</text>
  <circle cx="600" cy="690" r="36" fill="url(#g)"/>
  <text x="600" y="700" text-anchor="middle" fill="#0b1220" font-size="24" font-weight="700" font-family="Inter, sans-serif">AL</text>
</svg>`, name, dateStr)
}
