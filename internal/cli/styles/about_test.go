package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tvfocus/internal/cli/styles"
	"github.com/bnema/tvfocus/internal/domain/build"
)

func TestAboutRenderer_Render(t *testing.T) {
	out := styles.NewAboutRenderer(styles.NewTheme()).Render(build.Info{
		Version:   "v0.3.0",
		Commit:    "abc1234",
		BuildDate: "2026-10-01",
		GoVersion: "go1.25.3",
	})

	for _, want := range []string{"tvfocus", "v0.3.0", "abc1234", "2026-10-01", "go1.25.3", "25° either side", "60 points per step", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
}
