// Package attribution derives the click-source label attached to every
// consultation record. The label summarizes which marketing channel and
// creative asset drove a visitor to the form.
package attribution

// FallbackSource is used when the page was opened without a source code.
const FallbackSource = "직접유입"

// sourceNames maps traffic-source codes to their display names. Unknown codes
// pass through unchanged.
var sourceNames = map[string]string{
	"kakao":     "카카오",
	"naver":     "네이버",
	"google":    "구글",
	"facebook":  "페이스북",
	"instagram": "인스타그램",
	"youtube":   "유튜브",
	"daum":      "다음",
	"toss":      "토스",
}

// Identifier suffix separators, one per creative-asset kind.
const (
	blogSep     = "_블로그_"
	cafeSep     = "_카페_"
	materialSep = "_소재_"
)

// Params are the attribution query parameters read once at session creation.
type Params struct {
	Source   string
	Blog     string
	Cafe     string
	Material string
}

// SourceName returns the display name for a traffic-source code.
func SourceName(code string) string {
	if code == "" {
		return FallbackSource
	}
	if name, ok := sourceNames[code]; ok {
		return name
	}
	return code
}

// Label builds the click-source label for one page view. The first present
// identifier among blog, cafe and material is appended, in that priority
// order; with no identifier the label is just campaign and source name.
func Label(campaign string, p Params) string {
	label := campaign + "_" + SourceName(p.Source)
	switch {
	case p.Blog != "":
		return label + blogSep + p.Blog
	case p.Cafe != "":
		return label + cafeSep + p.Cafe
	case p.Material != "":
		return label + materialSep + p.Material
	}
	return label
}
