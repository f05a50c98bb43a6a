package attribution

import "testing"

func TestLabelKnownSources(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"kakao", "홈페이지이름_카카오"},
		{"naver", "홈페이지이름_네이버"},
		{"google", "홈페이지이름_구글"},
		{"facebook", "홈페이지이름_페이스북"},
		{"instagram", "홈페이지이름_인스타그램"},
		{"youtube", "홈페이지이름_유튜브"},
		{"daum", "홈페이지이름_다음"},
		{"toss", "홈페이지이름_토스"},
	}
	for _, c := range cases {
		got := Label("홈페이지이름", Params{Source: c.source})
		if got != c.want {
			t.Errorf("Label(%q) = %q, want %q", c.source, got, c.want)
		}
	}
}

func TestLabelUnknownSourcePassesThrough(t *testing.T) {
	got := Label("홈페이지이름", Params{Source: "newsletter"})
	if got != "홈페이지이름_newsletter" {
		t.Errorf("unknown source not passed through verbatim: %q", got)
	}
}

func TestLabelMissingSourceFallsBack(t *testing.T) {
	got := Label("홈페이지이름", Params{})
	if got != "홈페이지이름_직접유입" {
		t.Errorf("missing source should use fallback label, got %q", got)
	}
}

func TestLabelMaterialSuffix(t *testing.T) {
	got := Label("홈페이지이름", Params{Source: "kakao", Material: "42"})
	if got != "홈페이지이름_카카오_소재_42" {
		t.Errorf("material suffix wrong: %q", got)
	}
}

func TestLabelIdentifierPrecedence(t *testing.T) {
	cases := []struct {
		name string
		p    Params
		want string
	}{
		{
			name: "blog wins over cafe and material",
			p:    Params{Source: "naver", Blog: "b1", Cafe: "c1", Material: "m1"},
			want: "홈페이지이름_네이버_블로그_b1",
		},
		{
			name: "cafe wins over material",
			p:    Params{Source: "naver", Cafe: "c1", Material: "m1"},
			want: "홈페이지이름_네이버_카페_c1",
		},
		{
			name: "material alone",
			p:    Params{Source: "naver", Material: "m1"},
			want: "홈페이지이름_네이버_소재_m1",
		},
		{
			name: "no identifier",
			p:    Params{Source: "naver"},
			want: "홈페이지이름_네이버",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Label("홈페이지이름", c.p); got != c.want {
				t.Errorf("Label(%+v) = %q, want %q", c.p, got, c.want)
			}
		})
	}
}
