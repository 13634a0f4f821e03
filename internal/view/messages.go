package view

import (
	"context"
	"fmt"
	"io"

	"personal-site/internal/domain"
)

// MessageAPI es lo que la vista de mensajes necesita del cliente HTTP.
type MessageAPI interface {
	ListMessages(ctx context.Context) ([]domain.Message, error)
	SaveMessage(ctx context.Context, name, message string) (domain.Message, error)
}

type MessagesState struct {
	Messages []domain.Message
	Loaded   bool
	Error    string
}

// MessagesView lista los mensajes y permite dejar uno nuevo.
type MessagesView struct {
	api   MessageAPI
	lc    *lifecycle
	state MessagesState
}

func NewMessagesView(api MessageAPI) *MessagesView {
	return &MessagesView{
		api:   api,
		lc:    newLifecycle(),
		state: MessagesState{Messages: []domain.Message{}},
	}
}

// Mount dispara la carga de la lista una sola vez.
func (v *MessagesView) Mount(ctx context.Context) {
	loadCtx, ok := v.lc.start(ctx)
	if !ok {
		return
	}
	go v.load(loadCtx)
}

func (v *MessagesView) load(ctx context.Context) {
	messages, err := v.api.ListMessages(ctx)
	v.lc.apply(func() {
		if err != nil {
			v.state.Error = formatError(err)
		} else {
			v.state.Messages = append([]domain.Message{}, messages...)
		}
		v.state.Loaded = true
		v.lc.closeDone()
	})
}

// Submit guarda un mensaje y lo agrega a la lista local.
func (v *MessagesView) Submit(ctx context.Context, name, message string) (domain.Message, error) {
	ctx, cancel, err := v.lc.viewContext(ctx)
	if err != nil {
		return domain.Message{}, err
	}
	defer cancel()

	saved, err := v.api.SaveMessage(ctx, name, message)
	applied := v.lc.apply(func() {
		if err != nil {
			v.state.Error = formatError(err)
			return
		}
		v.state.Error = ""
		v.state.Messages = append(v.state.Messages, saved)
	})
	if err != nil {
		return domain.Message{}, err
	}
	if !applied {
		return saved, ErrUnmounted
	}
	return saved, nil
}

func (v *MessagesView) Unmount() {
	v.lc.stop()
}

func (v *MessagesView) Done() <-chan struct{} {
	return v.lc.done
}

func (v *MessagesView) State() MessagesState {
	v.lc.mu.Lock()
	defer v.lc.mu.Unlock()
	st := v.state
	st.Messages = append([]domain.Message{}, v.state.Messages...)
	return st
}

// Render escribe la lista en texto plano, un mensaje por línea.
func (v *MessagesView) Render(w io.Writer) error {
	st := v.State()
	if _, err := fmt.Fprintf(w, "Messages\n\n"); err != nil {
		return err
	}
	if !st.Loaded {
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	}
	if st.Error != "" {
		if _, err := fmt.Fprintf(w, "Error:\n%s\n\n", st.Error); err != nil {
			return err
		}
	}
	if len(st.Messages) == 0 {
		_, err := fmt.Fprintln(w, "No messages yet.")
		return err
	}
	for _, m := range st.Messages {
		if _, err := fmt.Fprintf(w, "%s  %s: %s\n", m.CreatedAt.Local().Format("2006-01-02 15:04"), m.Name, m.Message); err != nil {
			return err
		}
	}
	return nil
}
