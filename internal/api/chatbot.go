package api

import (
	"context"
	"net/http"
)

// Módulo del chatbot: un único envío de mensaje, igual que el widget
// flotante del cliente web.

// RespuestaChat respuesta del endpoint del chatbot.
type RespuestaChat struct {
	Respuesta string `json:"respuesta"`
}

// EnviarMensajeChat manda el mensaje del usuario y devuelve la respuesta.
func (c *Client) EnviarMensajeChat(ctx context.Context, mensaje string) (string, error) {
	data, err := c.enviar(ctx, http.MethodPost, "/chatbot/mensaje/", map[string]string{
		"mensaje": mensaje,
	})
	if err != nil {
		return "", err
	}
	var r RespuestaChat
	if err := decodificar(data, &r); err != nil {
		return "", err
	}
	return r.Respuesta, nil
}
