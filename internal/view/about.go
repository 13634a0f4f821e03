package view

import (
	"context"
	"fmt"
	"io"

	"personal-site/internal/domain"
)

// AboutFetcher es lo que la vista necesita del cliente HTTP.
type AboutFetcher interface {
	About(ctx context.Context) (domain.About, error)
}

// AboutState es el estado local de la vista About.
type AboutState struct {
	Info   []string
	Image  string
	Loaded bool
	Error  string
}

// AboutView carga el contenido de /about una vez por montaje.
type AboutView struct {
	api   AboutFetcher
	lc    *lifecycle
	state AboutState
}

func NewAboutView(api AboutFetcher) *AboutView {
	return &AboutView{
		api:   api,
		lc:    newLifecycle(),
		state: AboutState{Info: []string{}},
	}
}

// Mount dispara la carga. Llamadas repetidas no hacen nada.
func (v *AboutView) Mount(ctx context.Context) {
	loadCtx, ok := v.lc.start(ctx)
	if !ok {
		return
	}
	go v.load(loadCtx)
}

func (v *AboutView) load(ctx context.Context) {
	about, err := v.api.About(ctx)
	v.lc.apply(func() {
		if err != nil {
			v.state.Error = formatError(err)
		} else {
			v.state.Info = append([]string{}, about.Info...)
			v.state.Image = about.Image
		}
		v.state.Loaded = true
		v.lc.closeDone()
	})
}

// Unmount cancela la carga en curso. Un resultado que llegue después se descarta.
func (v *AboutView) Unmount() {
	v.lc.stop()
}

// Done se cierra cuando la carga termina o la vista se desmonta.
func (v *AboutView) Done() <-chan struct{} {
	return v.lc.done
}

// State devuelve una copia del estado actual.
func (v *AboutView) State() AboutState {
	v.lc.mu.Lock()
	defer v.lc.mu.Unlock()
	st := v.state
	st.Info = append([]string{}, v.state.Info...)
	return st
}

// Render escribe la vista en texto plano.
func (v *AboutView) Render(w io.Writer) error {
	st := v.State()
	if _, err := fmt.Fprintf(w, "About Me\n\n"); err != nil {
		return err
	}
	if !st.Loaded {
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	}
	if st.Error != "" {
		_, err := fmt.Fprintf(w, "Error:\n%s\n", st.Error)
		return err
	}
	for _, text := range st.Info {
		if _, err := fmt.Fprintf(w, "%s\n\n", text); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "[image: %s]\n", st.Image)
	return err
}
