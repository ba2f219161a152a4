package handler

import (
	"lide-archiv/internal/config"
	"lide-archiv/internal/service"
)

type Handlers struct {
	Person      *PersonHandler
	Entry       *EntryHandler
	Media       *MediaHandler
	Tag         *TagHandler
	EntryTag    *EntryTagHandler
	PersonTag   *PersonTagHandler
	PersonEntry *PersonEntryHandler
	MediaEntry  *MediaEntryHandler
	Relation    *RelationHandler
	Audit       *AuditHandler
	Admin       *AdminHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Person:      NewPersonHandler(services.Person, services.Detail),
		Entry:       NewEntryHandler(services.Entry, services.Detail),
		Media:       NewMediaHandler(services.Media),
		Tag:         NewTagHandler(services.Tag),
		EntryTag:    NewEntryTagHandler(services.Relation),
		PersonTag:   NewPersonTagHandler(services.Relation),
		PersonEntry: NewPersonEntryHandler(services.Relation),
		MediaEntry:  NewMediaEntryHandler(services.Relation),
		Relation:    NewRelationHandler(services.Relation),
		Audit:       NewAuditHandler(services.Audit),
		Admin:       NewAdminHandler(services.Seed, cfg),
	}
}
