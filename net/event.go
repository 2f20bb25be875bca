// Package net receives the game's event feed. It owns all wire
// concerns (socket, JSON, reconnect); entities only ever see decoded
// Event values.
package net

// Event types. Type selects which other fields are meaningful.
const (
	TypeHello  = "hello"  // server-assigned local id + spawn position
	TypeJoin   = "join"   // a player entered
	TypeLeave  = "leave"  // a player left
	TypeMove   = "move"   // authoritative position for a remote player
	TypeHealth = "health" // authoritative health value
	TypeDamage = "damage"
	TypeHeal   = "heal"
	TypeBoost  = "boost"
	TypeReset  = "reset"
)

// Event is one decoded message from the feed.
type Event struct {
	Type   string  `json:"type"`
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Health int     `json:"health,omitempty"`
	Amount int     `json:"amount,omitempty"`
	Frames int     `json:"frames,omitempty"`
	// Color is an explicit palette index; nil defers to the id hash.
	Color *int `json:"color,omitempty"`
}
