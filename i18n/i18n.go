package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

// LangEnv forces the UI language when set.
const LangEnv = "SHOWCASE_LANG"

var lang string

var supported = []string{"pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Home": {
		"pt": "Início",
		"es": "Inicio",
		"ru": "Главная",
	},
	"Contact": {
		"pt": "Contato",
		"es": "Contacto",
		"ru": "Контакты",
	},
	"Previous slide": {
		"pt": "Slide anterior",
		"es": "Diapositiva anterior",
		"ru": "Предыдущий слайд",
	},
	"Next slide": {
		"pt": "Próximo slide",
		"es": "Siguiente diapositiva",
		"ru": "Следующий слайд",
	},
	"Name": {
		"pt": "Nome",
		"es": "Nombre",
		"ru": "Имя",
	},
	"Email": {
		"pt": "E-mail",
		"es": "Correo",
		"ru": "Эл. почта",
	},
	"Phone": {
		"pt": "Telefone",
		"es": "Teléfono",
		"ru": "Телефон",
	},
	"Subject": {
		"pt": "Assunto",
		"es": "Asunto",
		"ru": "Тема",
	},
	"Message": {
		"pt": "Mensagem",
		"es": "Mensaje",
		"ru": "Сообщение",
	},
	"Send Message": {
		"pt": "Enviar mensagem",
		"es": "Enviar mensaje",
		"ru": "Отправить",
	},
	"Sending...": {
		"pt": "Enviando...",
		"es": "Enviando...",
		"ru": "Отправка...",
	},
	"Thank you! Your message has been sent.": {
		"pt": "Obrigado! Sua mensagem foi enviada.",
		"es": "¡Gracias! Tu mensaje ha sido enviado.",
		"ru": "Спасибо! Ваше сообщение отправлено.",
	},
	"Swipe, click the dots or use the arrow keys to browse.": {
		"pt": "Deslize, clique nos pontos ou use as setas para navegar.",
		"es": "Desliza, haz clic en los puntos o usa las flechas para navegar.",
		"ru": "Листайте, нажимайте на точки или используйте стрелки.",
	},
	"About": {
		"pt": "Sobre",
		"es": "Acerca de",
		"ru": "О программе",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv(LangEnv)); forcedLang != "" {
		log.Printf("%s is set to: '%s'", LangEnv, forcedLang)
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}
	if len(userLocales) == 0 {
		log.Println("No user locale detected, defaulting to english")
		lang = "en"
		return
	}

	lang = Match(userLocales[0])
	log.Printf("Detected user locale %s, language set to: %s", userLocales[0], lang)
}

// Match maps a locale such as "pt-BR" to a supported language, or "en".
func Match(userLocale string) string {
	for _, l := range supported {
		if strings.HasPrefix(userLocale, l) {
			return l
		}
	}
	return "en"
}

// T translates key into the current language, falling back to key.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}

// SetLang overrides the detected language, e.g. from the --lang flag.
func SetLang(l string) {
	lang = l
}
