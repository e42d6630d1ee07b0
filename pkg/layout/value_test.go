package layout

import "testing"

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		got    Value
		want   Value
		isAuto bool
	}

	tests := map[string]tc{
		"Auto": {
			got:    Auto(),
			want:   Value{Unit: UnitAuto},
			isAuto: true,
		},
		"Fixed": {
			got:  Fixed(12),
			want: Value{Amount: 12, Unit: UnitFixed},
		},
		"Percent": {
			got:  Percent(37.5),
			want: Value{Amount: 37.5, Unit: UnitPercent},
		},
		"zero value acts as auto": {
			got:    Value{},
			want:   Value{Unit: UnitAuto},
			isAuto: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("value = %+v, want %+v", tt.got, tt.want)
			}
			if got := tt.got.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		available int
		fallback  int
		want      int
	}

	tests := map[string]tc{
		"fixed ignores available and fallback": {
			value:     Fixed(7),
			available: 100,
			fallback:  99,
			want:      7,
		},
		"fixed zero is zero": {
			value:     Fixed(0),
			available: 50,
			fallback:  5,
			want:      0,
		},
		"negative fixed passes through": {
			value:     Fixed(-3),
			available: 50,
			fallback:  5,
			want:      -3,
		},
		"half of eighty": {
			value:     Percent(50),
			available: 80,
			want:      40,
		},
		"full available": {
			value:     Percent(100),
			available: 33,
			want:      33,
		},
		"over one hundred percent": {
			value:     Percent(150),
			available: 60,
			want:      90,
		},
		"fractional percent truncates": {
			value:     Percent(33.3),
			available: 10,
			want:      3,
		},
		"percent of nothing": {
			value:     Percent(75),
			available: 0,
			fallback:  9,
			want:      0,
		},
		"auto takes the fallback": {
			value:     Auto(),
			available: 100,
			fallback:  42,
			want:      42,
		},
		"zero value takes the fallback": {
			value:     Value{},
			available: 100,
			fallback:  6,
			want:      6,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.available, tt.fallback)
			if got != tt.want {
				t.Errorf("Resolve(%d, %d) = %d, want %d",
					tt.available, tt.fallback, got, tt.want)
			}
		})
	}
}
