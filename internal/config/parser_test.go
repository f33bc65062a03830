package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

const galleryYAML = `version: "1.0"
name: "Gallery"
theme: dark
variant: modern
size: md
buttons:
  - id: save
    label: Save
    variant: neon
accordions:
  - id: faq
    mode: single
    variant: retro
    items:
      - title: What
        content: Answer
        default_open: true
      - title: Why
        content: Because
sliders:
  - id: volume
    label: Volume
    value: 40
dialogs:
  - id: confirm
    title: Delete?
`

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseManifest(t *testing.T) {
	t.Parallel()

	invalidYAML := `version: "1.0"
name: [broken
`

	missingName := `version: "1.0"
buttons:
  - id: ok
    label: OK
`

	badVersion := `version: "beta"
name: "Bad Version"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, m *Manifest, err error)
	}{
		{
			name:     "valid manifest is parsed",
			contents: galleryYAML,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.NoError(t, err)
				require.NotNil(t, m)
				assert.Equal(t, "Gallery", m.Name)
				require.Len(t, m.Accordions, 1)
				assert.Equal(t, "retro", m.Accordions[0].Variant)
				assert.True(t, m.Accordions[0].Items[0].DefaultOpen)
				assert.Equal(t, "neon", m.Buttons[0].Variant)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.Error(t, err)
				var parseErr *prismerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "missing name returns validation error",
			contents: missingName,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "name", validationErr.Field)
			},
		},
		{
			name:     "bad version fails semver rule",
			contents: badVersion,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *prismerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "semver")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := ParseManifest(writeManifest(t, tc.contents))
			tc.assert(t, m, err)
		})
	}
}

func TestParseManifestMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *prismerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Zero(t, parseErr.Line)
}

func TestManifestKindsFollowDocumentOrder(t *testing.T) {
	t.Parallel()

	m, err := Parse("inline", []byte(galleryYAML))
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindButton, KindAccordion, KindSlider, KindDialog}, m.Kinds())
}

func TestManifestKindsWithoutDecoding(t *testing.T) {
	t.Parallel()

	m := &Manifest{
		Dialogs:    []DialogSpec{{ID: "d", Title: "D"}},
		Accordions: []AccordionSpec{{ID: "a"}},
	}
	assert.Equal(t, []Kind{KindAccordion, KindDialog}, m.Kinds())
}

func TestSpecDefaults(t *testing.T) {
	t.Parallel()

	m, err := Parse("inline", []byte(galleryYAML))
	require.NoError(t, err)

	slider := m.Sliders[0]
	assert.Equal(t, 0.0, slider.Min)
	assert.Equal(t, 100.0, slider.Max)
	assert.Equal(t, 1.0, slider.Step)
	assert.True(t, slider.ShowValue)

	assert.True(t, m.Dialogs[0].CloseOnEscape)

	explicit, err := Parse("inline", []byte(`version: "1.0"
name: g
dialogs:
  - id: strict
    title: Terms
    close_on_escape: false
`))
	require.NoError(t, err)
	assert.False(t, explicit.Dialogs[0].CloseOnEscape)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, extractLine(nil))
	assert.Equal(t, 0, extractLine(assert.AnError))
	assert.Equal(t, 7, extractLine(errLine7))
}

var errLine7 = &lineError{}

type lineError struct{}

func (*lineError) Error() string { return "yaml: line 7: did not find expected key" }
