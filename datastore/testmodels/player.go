/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels provides entity types used by datastore tests.
package testmodels

import (
	"github.com/go-openapi/strfmt"

	"github.com/suparena/fieldstore"
	"github.com/suparena/fieldstore/document"
	"github.com/suparena/fieldstore/registry"
)

// PlayerProfile is a nested entity serialized as a sub-document of Player.
type PlayerProfile struct {
	fieldstore.Serializer `json:"-"`

	Bio     string
	Country string
}

var profileFields = struct {
	Bio, Country registry.FieldDescriptor
}{
	Bio:     registry.FieldOf[PlayerProfile]("Bio"),
	Country: registry.FieldOf[PlayerProfile]("Country"),
}

// NewPlayerProfile constructs a PlayerProfile, registering its field names
// on first use.
func NewPlayerProfile() *PlayerProfile {
	registry.InitClass[PlayerProfile](func() {
		registry.RegisterField(profileFields.Bio, "bio")
		registry.RegisterField(profileFields.Country, "country")
	})
	return &PlayerProfile{}
}

func (p *PlayerProfile) WriteSelf(doc *document.Document) {
	p.WriteField(doc, profileFields.Bio, p.Bio)
	p.WriteField(doc, profileFields.Country, p.Country)
}

func (p *PlayerProfile) ReadSelf(doc *document.Document) {
	p.ReadField(doc, profileFields.Bio, &p.Bio)
	p.ReadField(doc, profileFields.Country, &p.Country)
}

// Player exercises every field shape: plain values, a tagged-union rating
// (established numeric rating or provisional label), an indirection motto,
// and a nested profile document.
type Player struct {
	fieldstore.Serializer `json:"-"`

	ID        string
	Name      string
	Rank      int
	CreatedAt strfmt.DateTime
	Rating    fieldstore.Union2[int64, string]
	Motto     fieldstore.Indirect[string]
	Profile   *PlayerProfile
}

var playerFields = struct {
	ID, Name, Rank, CreatedAt, Rating, Motto, Profile registry.FieldDescriptor
}{
	ID:        registry.FieldOf[Player]("ID"),
	Name:      registry.FieldOf[Player]("Name"),
	Rank:      registry.FieldOf[Player]("Rank"),
	CreatedAt: registry.FieldOf[Player]("CreatedAt"),
	Rating:    registry.FieldOf[Player]("Rating"),
	Motto:     registry.FieldOf[Player]("Motto"),
	Profile:   registry.FieldOf[Player]("Profile"),
}

// NewPlayer constructs a Player with its indirection pre-allocated and its
// profile in place, registering field names on first use.
func NewPlayer() *Player {
	registry.InitClass[Player](func() {
		registry.RegisterField(playerFields.ID, "id")
		registry.RegisterField(playerFields.Name, "name")
		registry.RegisterField(playerFields.Rank, "rank")
		registry.RegisterField(playerFields.CreatedAt, "createdAt")
		registry.RegisterField(playerFields.Rating, "rating")
		registry.RegisterField(playerFields.Motto, "motto")
		registry.RegisterField(playerFields.Profile, "profile")
	})
	return &Player{
		Motto:   fieldstore.NewIndirect[string](),
		Profile: NewPlayerProfile(),
	}
}

func (p *Player) WriteSelf(doc *document.Document) {
	p.WriteField(doc, playerFields.ID, p.ID)
	p.WriteField(doc, playerFields.Name, p.Name)
	p.WriteField(doc, playerFields.Rank, p.Rank)
	p.WriteField(doc, playerFields.CreatedAt, p.CreatedAt)
	p.WriteField(doc, playerFields.Rating, &p.Rating)
	p.WriteField(doc, playerFields.Motto, p.Motto)
	if p.Profile != nil {
		p.AddNestedDocument(doc, playerFields.Profile, fieldstore.Marshal(p.Profile))
	}
}

func (p *Player) ReadSelf(doc *document.Document) {
	p.ReadField(doc, playerFields.ID, &p.ID)
	p.ReadField(doc, playerFields.Name, &p.Name)
	p.ReadField(doc, playerFields.Rank, &p.Rank)
	p.ReadField(doc, playerFields.CreatedAt, &p.CreatedAt)
	p.ReadField(doc, playerFields.Rating, &p.Rating)
	p.ReadField(doc, playerFields.Motto, p.Motto)
	if p.Profile != nil {
		if sub, err := p.ExtractNestedDocument(doc, playerFields.Profile); err == nil {
			p.Profile.ReadSelf(sub)
		}
	}
}
