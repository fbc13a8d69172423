package accessibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnounceContentOnly(t *testing.T) {
	t.Parallel()

	got := Announce(Element{Content: "text one text two", Props: Props{Group: true}})
	assert.Equal(t, "text one text two", got)
}

func TestAnnounceLabelReplacesContent(t *testing.T) {
	t.Parallel()

	el := Element{
		Content: "text one text two",
		Props: Props{
			Group: true,
			Label: "combined label",
			Hint:  "navigates to details",
		},
	}

	got := Announce(el)
	assert.Equal(t, "combined label. navigates to details", got)
	assert.NotContains(t, got, "text one", "label must replace content, not join it")
}

func TestAnnounceRoleAndState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		props Props
		want  string
	}{
		{
			name:  "header role",
			props: Props{Role: RoleHeader},
			want:  "heading, header",
		},
		{
			name:  "disabled",
			props: Props{State: State{Disabled: true}},
			want:  "heading, disabled",
		},
		{
			name:  "checked",
			props: Props{State: State{Checked: CheckedTrue}},
			want:  "heading, checked",
		},
		{
			name:  "unchecked is explicit",
			props: Props{State: State{Checked: CheckedFalse}},
			want:  "heading, not checked",
		},
		{
			name:  "mixed",
			props: Props{State: State{Checked: CheckedMixed}},
			want:  "heading, mixed",
		},
		{
			name:  "busy",
			props: Props{State: State{Busy: true}},
			want:  "heading, busy",
		},
		{
			name:  "no checkable semantics stays silent",
			props: Props{State: State{Checked: CheckedNone}},
			want:  "heading",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Announce(Element{Content: "heading", Props: tt.props})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnnounceLiveValueNeverStale(t *testing.T) {
	t.Parallel()

	value := ""
	el := Element{
		Content: "Name",
		Props: Props{
			Role:      RoleTextField,
			LiveValue: func() string { return value },
		},
	}

	assert.Equal(t, "Name, text field", Announce(el))

	value = "Ada"
	assert.Equal(t, "Name, value Ada, text field", Announce(el))

	value = "Ada L"
	assert.Equal(t, "Name, value Ada L, text field", Announce(el))
}

func TestAnnounceLanguageTagAppended(t *testing.T) {
	t.Parallel()

	el := Element{
		Content: "Bonjour",
		Props:   Props{Group: true, Label: "Bonjour le monde", Language: "fr-FR"},
	}
	assert.Equal(t, "Bonjour le monde (fr-FR)", Announce(el))
}

func TestHasAction(t *testing.T) {
	t.Parallel()

	p := Props{Actions: []ActionName{ActionMagicTap, ActionCut, ActionCopy, ActionPaste}}
	assert.True(t, p.HasAction(ActionCopy))
	assert.False(t, p.HasAction(ActionName("longpress")))
	assert.False(t, Props{}.HasAction(ActionCopy))
}
