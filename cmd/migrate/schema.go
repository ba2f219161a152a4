package main

// Statements run in order and are idempotent.
//
// Link tables keep at most one row per natural key; re-adding a removed
// link revives the existing row instead of inserting a new one, so the
// unique indexes span deleted rows too. Tag name uniqueness only applies
// to active tags, hence the partial index.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS persons (
		id UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT,
		nickname TEXT,
		birth_date DATE,
		phone TEXT,
		email TEXT,
		note TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS entries (
		id UUID PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT,
		content TEXT NOT NULL,
		occurred_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS media (
		id UUID PRIMARY KEY,
		media_type TEXT NOT NULL,
		mime_type TEXT,
		uri TEXT NOT NULL,
		title TEXT,
		note TEXT,
		taken_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS tags (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_name_active
		ON tags (LOWER(name)) WHERE deleted_at IS NULL`,

	`CREATE TABLE IF NOT EXISTS entry_tags (
		id UUID PRIMARY KEY,
		entry_id UUID NOT NULL REFERENCES entries(id),
		tag_id UUID NOT NULL REFERENCES tags(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_entry_tags_key
		ON entry_tags (entry_id, tag_id)`,

	`CREATE TABLE IF NOT EXISTS person_tags (
		id UUID PRIMARY KEY,
		person_id UUID NOT NULL REFERENCES persons(id),
		tag_id UUID NOT NULL REFERENCES tags(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_person_tags_key
		ON person_tags (person_id, tag_id)`,

	`CREATE TABLE IF NOT EXISTS person_entries (
		id UUID PRIMARY KEY,
		person_id UUID NOT NULL REFERENCES persons(id),
		entry_id UUID NOT NULL REFERENCES entries(id),
		role TEXT NOT NULL DEFAULT 'DEFAULT',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_person_entries_key
		ON person_entries (person_id, entry_id, role)`,

	`CREATE TABLE IF NOT EXISTS media_entries (
		id UUID PRIMARY KEY,
		media_id UUID NOT NULL REFERENCES media(id),
		entry_id UUID NOT NULL REFERENCES entries(id),
		caption TEXT,
		sort_order INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_media_entries_key
		ON media_entries (media_id, entry_id)`,

	`CREATE TABLE IF NOT EXISTS person_relations (
		id UUID PRIMARY KEY,
		from_person_id UUID NOT NULL REFERENCES persons(id),
		to_person_id UUID NOT NULL REFERENCES persons(id),
		type TEXT NOT NULL,
		note TEXT,
		valid_from TIMESTAMPTZ,
		valid_to TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_person_relations_key
		ON person_relations (from_person_id, to_person_id, type)`,

	`CREATE TABLE IF NOT EXISTS audit_logs (
		id UUID PRIMARY KEY,
		action TEXT NOT NULL,
		entity_type TEXT NOT NULL,
		entity_id UUID NOT NULL,
		old_value JSONB,
		new_value JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entry_tags_tag ON entry_tags (tag_id)`,
	`CREATE INDEX IF NOT EXISTS idx_person_tags_tag ON person_tags (tag_id)`,
	`CREATE INDEX IF NOT EXISTS idx_person_entries_entry ON person_entries (entry_id)`,
	`CREATE INDEX IF NOT EXISTS idx_media_entries_entry ON media_entries (entry_id)`,
	`CREATE INDEX IF NOT EXISTS idx_person_relations_to ON person_relations (to_person_id)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_entity ON audit_logs (entity_type, entity_id)`,
}
