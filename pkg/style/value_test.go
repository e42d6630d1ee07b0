package style

import "testing"

func TestValue_KindAndPayload(t *testing.T) {
	type tc struct {
		v        Value
		wantKind Kind
		wantStr  string
	}
	tests := map[string]tc{
		"length":  {v: Length(12), wantKind: KindLength, wantStr: "12"},
		"color":   {v: ColorValue(RGB(255, 255, 0)), wantKind: KindColor, wantStr: "#ffff00"},
		"keyword": {v: Keyword("row"), wantKind: KindKeyword, wantStr: "row"},
		"number":  {v: Number(1.5), wantKind: KindNumber, wantStr: "1.5"},
		"insets":  {v: InsetsValue(InsetsTRBL(1, 2, 3, 4)), wantKind: KindInsets, wantStr: "1 2 3 4"},
		"zero":    {v: Value{}, wantKind: KindInvalid, wantStr: "<invalid>"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
			if got := tt.v.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestValue_Equal(t *testing.T) {
	type tc struct {
		a, b Value
		want bool
	}
	tests := map[string]tc{
		"equal lengths":     {a: Length(5), b: Length(5), want: true},
		"different lengths": {a: Length(5), b: Length(6), want: false},
		"kind mismatch":     {a: Length(5), b: Number(5), want: false},
		"equal colors":      {a: ColorValue(RGB(1, 2, 3)), b: ColorValue(RGB(1, 2, 3)), want: true},
		"different colors":  {a: ColorValue(RGB(1, 2, 3)), b: ColorValue(RGB(3, 2, 1)), want: false},
		"equal keywords":    {a: Keyword("wrap"), b: Keyword("wrap"), want: true},
		"equal insets":      {a: InsetsValue(InsetsAll(2)), b: InsetsValue(InsetsTRBL(2, 2, 2, 2)), want: true},
		"zero values":       {a: Value{}, b: Value{}, want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_AccessorPanicsOnWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Length() on a keyword value should panic")
		}
	}()
	Keyword("row").Length()
}

func TestInsets_Constructors(t *testing.T) {
	if got, want := InsetsAll(3), (Insets{3, 3, 3, 3}); got != want {
		t.Errorf("InsetsAll(3) = %v, want %v", got, want)
	}
	if got, want := InsetsSymmetric(1, 2), (Insets{Top: 1, Right: 2, Bottom: 1, Left: 2}); got != want {
		t.Errorf("InsetsSymmetric(1, 2) = %v, want %v", got, want)
	}
	if got, want := InsetsTRBL(1, 2, 3, 4), (Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}); got != want {
		t.Errorf("InsetsTRBL(1, 2, 3, 4) = %v, want %v", got, want)
	}
}
