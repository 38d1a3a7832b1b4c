// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wsock

import (
	"encoding/json"
	"fmt"

	"cogentcore.org/synaptic/config"
	"cogentcore.org/synaptic/scene"
)

// MessageTypes are the values of the type field of a [Message].
const (
	TypeHello  = "hello"
	TypeFrame  = "frame"
	TypeMove   = "move"
	TypeClick  = "click"
	TypeResize = "resize"
	TypeWheel  = "wheel"
	TypeConfig = "config"
)

// Message is a JSON text message exchanged with a client.
// Only the fields relevant to the type are set.
type Message struct {
	Type string `json:"type"`

	// Client is the id of the client, in hello messages.
	Client string `json:"client,omitempty"`

	// Frame is the frame description, in frame messages.
	Frame *scene.Description `json:"frame,omitempty"`

	// X and Y are normalized device coordinates, in move and click messages.
	X float32 `json:"x,omitempty"`
	Y float32 `json:"y,omitempty"`

	// Width and Height are the viewport size, in resize messages.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Delta is the wheel delta, in wheel messages.
	Delta float32 `json:"delta,omitempty"`

	// Config holds the config fields to change, in config messages.
	Config json.RawMessage `json:"config,omitempty"`
}

// Decode decodes a client message into a scene event.
// A config message becomes a [scene.ConfigPatchEvent] holding only
// the fields the client sent, which the scene applies over its
// current config.
func Decode(data []byte) (scene.Event, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("wsock: invalid message: %w", err)
	}
	switch msg.Type {
	case TypeMove:
		return scene.PointerEvent{Kind: scene.PointerMove, X: msg.X, Y: msg.Y}, nil
	case TypeClick:
		return scene.PointerEvent{Kind: scene.PointerClick, X: msg.X, Y: msg.Y}, nil
	case TypeResize:
		return scene.ResizeEvent{Width: msg.Width, Height: msg.Height}, nil
	case TypeWheel:
		return scene.WheelEvent{Delta: msg.Delta}, nil
	case TypeConfig:
		if len(msg.Config) > 0 {
			check := config.Default()
			if err := json.Unmarshal(msg.Config, &check); err != nil {
				return nil, fmt.Errorf("wsock: invalid config: %w", err)
			}
		}
		return scene.ConfigPatchEvent{Patch: msg.Config}, nil
	}
	return nil, fmt.Errorf("wsock: unknown message type %q", msg.Type)
}

// frameMessage returns the encoded frame message for the given description.
func frameMessage(d *scene.Description) ([]byte, error) {
	return json.Marshal(&Message{Type: TypeFrame, Frame: d})
}
