// Package model holds the gorm table shapes for the simulation. Variable
// size payloads (resource lists, inventories, allegiance) are stored as
// JSON text columns; everything queried by key gets its own column.
package model

import "time"

type MapTile struct {
	X               int    `gorm:"primaryKey;autoIncrement:false"`
	Y               int    `gorm:"primaryKey;autoIncrement:false"`
	Kind            string `gorm:"size:32;not null"`
	ClaimedBy       string `gorm:"size:128;index"`
	Name            string `gorm:"size:128"`
	Resources       string `gorm:"type:text"`
	PlacedResources string `gorm:"type:text"`
	Durability      string `gorm:"type:text"`
	Walkable        *bool
	UpdatedAt       time.Time
}

type PlayerState struct {
	PlayerID  string `gorm:"primaryKey;size:128"`
	X         int
	Y         int
	Facing    string `gorm:"size:16"`
	Health    int
	Coins     int
	Inventory string `gorm:"type:text"`
	UpdatedAt time.Time
}

type AgentState struct {
	AgentID      string `gorm:"primaryKey;size:128"`
	Kind         string `gorm:"size:16;index;not null"`
	X            int
	Y            int
	Facing       string `gorm:"size:16"`
	Health       int
	Coins        int
	Inventory    string `gorm:"type:text"`
	Allegiance   string `gorm:"type:text"`
	LastActionAt time.Time
	UpdatedAt    time.Time
}

type Sovereignty struct {
	OwnerID   string `gorm:"primaryKey;size:128"`
	Name      string `gorm:"size:128;not null"`
	Flag      string `gorm:"size:16"`
	Motto     string `gorm:"size:256"`
	FoundedAt time.Time
	UpdatedAt time.Time
}
