package cli

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{"join": strings.Join}

var cardTemplate = template.Must(template.New("card").Funcs(funcs).Parse(`
=== {{.Word}} ===
ID:            {{.ID}}
Meaning:       {{.Meaning}}
{{- if .PartOfSpeech }}
Part of speech: {{.PartOfSpeech}}
{{- end}}
{{- if .Pronunciation }}
Pronunciation: {{.Pronunciation}}
{{- end}}
{{- if .Examples }}
Examples:      {{join .Examples "; "}}
{{- end}}
{{- if .Synonyms }}
Synonyms:      {{join .Synonyms ", "}}
{{- end}}
{{- if .Antonyms }}
Antonyms:      {{join .Antonyms ", "}}
{{- end}}
{{- if .PersonalNotes }}
Notes:         {{.PersonalNotes}}
{{- end}}
{{- if .AudioURL }}
Audio:         {{.AudioURL}}
{{- end}}
`))

// Лицевая сторона в режиме study: только слово
var frontTemplate = template.Must(template.New("front").Parse(`
[{{.Position}}/{{.Total}}]  {{.Card.Word}}
{{- if .Card.Pronunciation }}  {{.Card.Pronunciation}}{{end}}
`))

var backTemplate = template.Must(template.New("back").Funcs(funcs).Parse(`
[{{.Position}}/{{.Total}}]  {{.Card.Word}}{{if .Card.PartOfSpeech}} ({{.Card.PartOfSpeech}}){{end}}
  {{.Card.Meaning}}
{{- range .Card.Examples }}
  • {{.}}
{{- end}}
{{- if .Card.Synonyms }}
  Synonyms: {{join .Card.Synonyms ", "}}
{{- end}}
`))
