package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEmail(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Derrick O. Omondi", "derrickoomondi@payflow.org"},
		{"Jane Doe", "janedoe@payflow.org"},
		{"  Ann-Marie   O'Neil 3rd ", "annmarieoneilrd@payflow.org"},
		{"J4ne D03", "jned@payflow.org"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DefaultEmail(c.name, "payflow.org"), "name %q", c.name)
	}
}

func TestDefaultEmail_Idempotent(t *testing.T) {
	first := DefaultEmail("Derrick O. Omondi", "payflow.org")
	second := DefaultEmail("Derrick O. Omondi", "payflow.org")
	assert.Equal(t, first, second)
}

func TestSuggestEmails_Variants(t *testing.T) {
	got := SuggestEmails("Derrick O. Omondi", "payflow.org")
	assert.Equal(t, []string{
		"derrickoomondi@payflow.org",
		"derrick.omondi@payflow.org",
		"domondi@payflow.org",
		"derrick_omondi@payflow.org",
	}, got)
}

func TestSuggestEmails_SingleToken(t *testing.T) {
	got := SuggestEmails("Cher", "payflow.org")
	assert.Equal(t, []string{"cher@payflow.org"}, got)
}

func TestSuggestEmails_Deduplicates(t *testing.T) {
	// initial+last collides with the concatenated base for one-letter names
	got := SuggestEmails("A Ba", "payflow.org")
	assert.Equal(t, []string{
		"aba@payflow.org",
		"a.ba@payflow.org",
		"a_ba@payflow.org",
	}, got)
}
