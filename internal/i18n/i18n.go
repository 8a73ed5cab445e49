package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the message bundle. English and Spanish catalogs
// are embedded; localesPath may point at a directory with extra
// active.*.toml files and can be empty.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")
	bundle.MustParseMessageFileBytes([]byte(spanishMessages), "active.es.toml")

	if localesPath != "" {
		files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Report inactive branches of a Gitea repository"

	[app_description]
	other = "Queries the Gitea API for the branches of a repository and prints a table of the branches whose last commit is at least the given number of days old."

	[flag.access_token_usage]
	other = "Gitea access token"

	[flag.gitea_url_usage]
	other = "Base URL of the Gitea server"

	[flag.repo_owner_usage]
	other = "Owner of the repository"

	[flag.repository_usage]
	other = "Name of the repository"

	[flag.number_of_days_usage]
	other = "Inactivity threshold in days"

	[flag.lang_usage]
	other = "Output language (en, es)"

	[flag.insecure_usage]
	other = "Skip TLS certificate verification"

	[flag.timeout_usage]
	other = "Timeout for requests to the Gitea server"

	[flag.json_usage]
	other = "Print the report as JSON instead of a table"

	[flag.verbose_usage]
	other = "Show informational log output"

	[flag.debug_usage]
	other = "Show debug log output"

	[report.command_usage]
	other = "Print the inactive-branch report"

	[report.fetching]
	other = "Fetching branches from {{.Owner}}/{{.Repository}}..."

	[report.no_inactive_branches]
	other = "No branches inactive for {{.Days}} days or more."

	[report.column_branch]
	other = "BRANCH"

	[report.column_last_commit]
	other = "LAST COMMIT"

	[report.column_days_inactive]
	other = "DAYS INACTIVE"

	[report.column_author]
	other = "AUTHOR"

	[report.column_message]
	other = "MESSAGE"

	[version.usage]
	other = "Print the version"

	[version.message]
	other = "gitea-branch-activity {{.Version}}"

	[update.available]
	other = "Update available: {{.Current}} -> {{.Latest}}"

	[update.command]
	other = "Run {{.Command}} to install it"

	[ui_error.try_suggestion]
	other = "Try: "
	`

var spanishMessages = `
	[app_usage]
	other = "Reporta las ramas inactivas de un repositorio de Gitea"

	[app_description]
	other = "Consulta la API de Gitea por las ramas de un repositorio e imprime una tabla con las ramas cuyo último commit tiene al menos la cantidad de días indicada."

	[flag.access_token_usage]
	other = "Token de acceso de Gitea"

	[flag.gitea_url_usage]
	other = "URL base del servidor de Gitea"

	[flag.repo_owner_usage]
	other = "Dueño del repositorio"

	[flag.repository_usage]
	other = "Nombre del repositorio"

	[flag.number_of_days_usage]
	other = "Umbral de inactividad en días"

	[flag.lang_usage]
	other = "Idioma de salida (en, es)"

	[flag.insecure_usage]
	other = "No verificar el certificado TLS"

	[flag.timeout_usage]
	other = "Timeout para las peticiones al servidor de Gitea"

	[flag.json_usage]
	other = "Imprimir el reporte como JSON en lugar de una tabla"

	[flag.verbose_usage]
	other = "Mostrar logs informativos"

	[flag.debug_usage]
	other = "Mostrar logs de debug"

	[report.command_usage]
	other = "Imprimir el reporte de ramas inactivas"

	[report.fetching]
	other = "Obteniendo las ramas de {{.Owner}}/{{.Repository}}..."

	[report.no_inactive_branches]
	other = "No hay ramas inactivas por {{.Days}} días o más."

	[report.column_branch]
	other = "RAMA"

	[report.column_last_commit]
	other = "ÚLTIMO COMMIT"

	[report.column_days_inactive]
	other = "DÍAS INACTIVA"

	[report.column_author]
	other = "AUTOR"

	[report.column_message]
	other = "MENSAJE"

	[version.usage]
	other = "Imprimir la versión"

	[version.message]
	other = "gitea-branch-activity {{.Version}}"

	[update.available]
	other = "Actualización disponible: {{.Current}} -> {{.Latest}}"

	[update.command]
	other = "Ejecutá {{.Command}} para instalarla"

	[ui_error.try_suggestion]
	other = "Probá: "
	`
