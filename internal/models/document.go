package models

// Document is the whole application state persisted as one unit. Slices keep
// insertion order; list operations serve them in storage order.
type Document struct {
	Users []User      `json:"users" bson:"users"`
	Jobs  []JobRecord `json:"jobs" bson:"jobs"`
	Parts []Part      `json:"parts" bson:"parts"`
}

// NewDocument returns an empty initialized document.
func NewDocument() *Document {
	return &Document{
		Users: []User{},
		Jobs:  []JobRecord{},
		Parts: []Part{},
	}
}

// FindUser returns a pointer into Users for the given id, or nil.
func (d *Document) FindUser(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByUsername returns a pointer into Users for the given username, or nil.
func (d *Document) FindUserByUsername(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

// FindJob returns a pointer into Jobs for the given id, or nil.
func (d *Document) FindJob(id string) *JobRecord {
	for i := range d.Jobs {
		if d.Jobs[i].ID == id {
			return &d.Jobs[i]
		}
	}
	return nil
}

// FindPart returns a pointer into Parts for the given id, or nil.
func (d *Document) FindPart(id string) *Part {
	for i := range d.Parts {
		if d.Parts[i].ID == id {
			return &d.Parts[i]
		}
	}
	return nil
}

// Mechanics returns the users holding the mechanic role, in storage order.
func (d *Document) Mechanics() []User {
	mechanics := []User{}
	for _, u := range d.Users {
		if u.Role == RoleMechanic {
			mechanics = append(mechanics, u.Public())
		}
	}
	return mechanics
}
