package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenSVG(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		wantErr bool
	}{
		{
			name:   "plain icon",
			markup: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M12 2L2 22h20z"/></svg>`,
		},
		{
			name:   "nested groups and ellipses",
			markup: `<svg viewBox="-11.5 -10.23174 23 20.46348"><g stroke="#61DAFB" fill="none"><ellipse rx="11" ry="4.2"/></g></svg>`,
		},
		{
			name:    "script element",
			markup:  `<svg><script>alert(1)</script></svg>`,
			wantErr: true,
		},
		{
			name:    "event handler attribute",
			markup:  `<svg onload="alert(1)"><path d="M0 0"/></svg>`,
			wantErr: true,
		},
		{
			name:    "foreignObject",
			markup:  `<svg><foreignObject><body/></foreignObject></svg>`,
			wantErr: true,
		},
		{
			name:    "javascript href",
			markup:  `<svg><a href="javascript:alert(1)"><path/></a></svg>`,
			wantErr: true,
		},
		{
			name:    "xlink javascript href",
			markup:  `<svg><a xlink:href="JAVASCRIPT:alert(1)"><path/></a></svg>`,
			wantErr: true,
		},
		{
			name:    "not svg at root",
			markup:  `<div>hi</div>`,
			wantErr: true,
		},
		{
			name:    "empty input",
			markup:  ``,
			wantErr: true,
		},
		{
			name:    "broken markup",
			markup:  `<svg><path`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ScreenSVG(tt.markup)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
