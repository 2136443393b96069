// Package i18n serves the UI strings in Spanish or English.
//
// Message keys are the English strings. Spanish translations are registered
// with golang.org/x/text/message; English needs no entries because an
// unmatched key is printed as-is.
package i18n

import (
	"log"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured, it does not parse or
// its language is not supported.
const DefaultLocale = "es"

// Supported lists the locales with a full catalog.
var Supported = []string{"en", "es"}

// Translations must escape a literal percent sign as %%.
var spanish = map[string]string{
	"School Management System": "Sistema de Gestión Escolar",

	// navigation
	"Dashboard":  "Dashboard",
	"Attendance": "Asistencia",
	"Tracking":   "Seguimiento",
	"Help":       "Ayuda",
	"Quit":       "Salir",
	"cancel":     "cancelar",

	"Press [SPC] for commands": "Presiona [SPC] para comandos",

	// login
	"Email:":                         "Email:",
	"Password:":                      "Contraseña:",
	"Login":                          "Login",
	"Enter: log in  Tab: next field  Esc: clear  Ctrl+C: quit": "Enter: ingresar  Tab: siguiente campo  Esc: borrar  Ctrl+C: salir",

	// dashboard
	"Daily attendance": "Asistencia del día",
	"Average grades":   "Notas promedio",
	"Present":          "Presente",
	"Late":             "Tardanza",
	"Absent":           "Falta",
	"Date: %s":         "Fecha: %s",
	"←/→: change date": "←/→: cambiar fecha",
	"Mat":              "Mat",
	"Len":              "Len",
	"Hist":             "Hist",
	"Cien":             "Cien",

	// attendance
	"No.":                "N°",
	"Name":               "Nombre",
	"Attended":           "Asistió",
	"Missed":             "Faltó",
	"x: export to Excel": "x: exportar a Excel",
	"Exporting…":         "Exportando…",
	"Exported to %s":     "Exportado a %s",
	"Export failed: %v":  "Error al exportar: %v",

	// tracking
	"Search student:":                                                 "Buscar alumno:",
	"Student: %s":                                                     "Alumno: %s",
	"Behavior today:":                                                 "Comportamiento hoy:",
	"Enrolled courses:":                                               "Cursos inscritos:",
	"(none)":                                                          "(ninguno)",
	"Grade average":                                                   "Promedio de notas",
	"Attendance rate":                                                 "%% de asistencias",
	"Class rank":                                                      "N° de puesto",
	"Absences":                                                        "N° de faltas",
	"Excellent":                                                       "Excelente",
	"Good":                                                            "Bueno",
	"Fair":                                                            "Regular",
	"Poor":                                                            "Malo",
	"Enter: search  Esc: leave field  /: search again  ←/→: behavior": "Enter: buscar  Esc: salir del campo  /: buscar de nuevo  ←/→: comportamiento",

	// help
	"Frequently asked questions":                                "Preguntas Frecuentes",
	"How do I record attendance?":                               "¿Cómo registro la asistencia?",
	"Go to the 'Attendance' section and tick the matching box.": "Ve a la sección 'Asistencia' y marca la casilla correspondiente.",
	"How do I look up a student?":                               "¿Cómo busco a un alumno?",
	"In the 'Tracking' section, use the search box at the top.": "En la sección 'Seguimiento', usa el buscador en la parte superior.",
	"How do I change my password?":                              "¿Cómo cambio mi contraseña?",
	"Go to 'Settings' and choose 'Change password'.":            "Ve a 'Configuración' y selecciona 'Cambiar contraseña'.",

	// quit confirmation
	"Quit?":                         "¿Salir?",
	"Close the application":         "Cerrar la aplicación",
	"y/Enter: confirm  Esc: cancel": "y/Enter: confirmar  Esc: cancelar",
}

var registerOnce sync.Once

func register() {
	for key, msg := range spanish {
		if err := message.SetString(language.Spanish, key, msg); err != nil {
			log.Printf("i18n: register %q: %v", key, err)
		}
	}
}

// Tag parses locale, falling back to DefaultLocale. Regional variants of a
// supported language (es-MX) are kept.
func Tag(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Make(DefaultLocale)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		log.Printf("i18n: unknown locale %q, using %s", locale, DefaultLocale)
		return language.Make(DefaultLocale)
	}
	if !supported(tag) {
		log.Printf("i18n: unsupported locale %q, using %s", locale, DefaultLocale)
		return language.Make(DefaultLocale)
	}
	return tag
}

func supported(tag language.Tag) bool {
	base, _ := tag.Base()
	for _, s := range Supported {
		if base.String() == s {
			return true
		}
	}
	return false
}

// NewPrinter returns a printer for locale with the catalogs registered.
func NewPrinter(locale string) *message.Printer {
	registerOnce.Do(register)
	return message.NewPrinter(Tag(locale))
}
