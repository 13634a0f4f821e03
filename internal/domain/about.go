package domain

// About es el contenido fijo de la página "about me".
type About struct {
	Info  []string `json:"info"`
	Image string   `json:"image"`
}
