package i18n

import "testing"

func TestMatch(t *testing.T) {
	tests := map[string]string{
		"pt-BR": "pt",
		"es-MX": "es",
		"ru":    "ru",
		"en-US": "en",
		"fr-FR": "en",
		"":      "en",
	}
	for in, want := range tests {
		if got := Match(in); got != want {
			t.Errorf("Match(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestT(t *testing.T) {
	prev := GetLang()
	defer SetLang(prev)

	SetLang("pt")
	if got := T("Contact"); got != "Contato" {
		t.Errorf("T(Contact) in pt = %q", got)
	}
	if got := T("Untranslated"); got != "Untranslated" {
		t.Errorf("T falls back to the key, got %q", got)
	}

	SetLang("en")
	if got := T("Contact"); got != "Contact" {
		t.Errorf("T(Contact) in en = %q", got)
	}
}
