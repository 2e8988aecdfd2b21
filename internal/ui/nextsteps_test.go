package ui

import (
	"strings"
	"testing"
)

func TestNextSteps(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    []string
		notWant []string
	}{
		{
			name:    "app_installed",
			summary: Summary{Path: "apps/auth/core", Manager: "npm", Installed: true},
			want:    []string{"cd apps/auth/core", "npm run dev", "TypeScript format", DocsURL},
			notWant: []string{"npm install", "chrome://extensions/"},
		},
		{
			name:    "app_not_installed_jsx",
			summary: Summary{Path: "my-app", JSX: true, Manager: "pnpm"},
			want:    []string{"pnpm install", "pnpm run dev", "JSX format"},
		},
		{
			name:    "extension",
			summary: Summary{Path: "tools/page-analyzer", Extension: true, Installed: true},
			want:    []string{"npm run build", "npm run package", "chrome://extensions/", "Load unpacked", "dist/"},
			notWant: []string{"run dev"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := NextSteps(tt.summary)
			for _, w := range tt.want {
				if !strings.Contains(md, w) {
					t.Errorf("markdown missing %q:\n%s", w, md)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(md, w) {
					t.Errorf("markdown unexpectedly contains %q:\n%s", w, md)
				}
			}
		})
	}
}

func TestRenderMarkdown_Plain(t *testing.T) {
	md := NextSteps(Summary{Path: "my-app", Installed: true})
	out, err := RenderMarkdown(md, false)
	if err != nil {
		t.Fatalf("RenderMarkdown error: %v", err)
	}
	for _, want := range []string{"cd my-app", "npm run dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
}
