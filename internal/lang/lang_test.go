package lang

import "testing"

func TestFromFilename(t *testing.T) {
	cases := []struct {
		path string
		want Flags
	}{
		{"main.c", C},
		{"main.h", C},
		{"widget.cpp", CPP},
		{"widget.hpp", CPP},
		{"prog.d", D},
		{"app.cs", CS},
		{"Main.java", Java},
		{"view.m", OC},
		{"view.mm", OC | CPP},
		{"plugin.sma", Pawn},
		{"script.es", ECMA},
		{"window.vala", Vala},
		{"unknown.xyz", C}, // default
	}
	for _, tc := range cases {
		if got := FromFilename(tc.path); got != tc.want {
			t.Errorf("FromFilename(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestFromTag(t *testing.T) {
	if got := FromTag("CPP"); got != CPP {
		t.Errorf("FromTag(CPP) = %v", got)
	}
	if got := FromTag("oc+"); got != OC|CPP {
		t.Errorf("FromTag(oc+) = %v", got)
	}
	if got := FromTag("nonsense"); got != None {
		t.Errorf("FromTag(nonsense) = %v, want None", got)
	}
}

func TestHas(t *testing.T) {
	lf := OC | CPP
	if !lf.Has(CPP) {
		t.Error("OC|CPP should have CPP")
	}
	if !lf.Has(OC | D) {
		t.Error("Has matches any bit")
	}
	if lf.Has(Pawn) {
		t.Error("OC|CPP should not have Pawn")
	}
}

func TestString(t *testing.T) {
	if s := CPP.String(); s != "CPP" {
		t.Errorf("CPP.String() = %q", s)
	}
	if s := (OC | CPP).String(); s != "OC+" {
		t.Errorf("(OC|CPP).String() = %q", s)
	}
}
