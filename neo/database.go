package neo

// Database holds the full collections of objects and close approaches, linked
// by primary designation.
//
// Create instances with [NewDatabase] or [Load].
type Database struct {
	byDesignation map[string]*Object
	objects       []*Object
	approaches    []*CloseApproach
}

// NewDatabase links approaches to their objects by designation and returns
// the linked database. Approaches whose designation has no matching object
// keep a nil NEO reference; they still appear in [Database.Approaches].
func NewDatabase(objects []*Object, approaches []*CloseApproach) *Database {
	byDes := make(map[string]*Object, len(objects))
	for _, obj := range objects {
		byDes[obj.Designation] = obj
	}

	for _, ca := range approaches {
		obj, ok := byDes[ca.Designation]
		if !ok {
			continue
		}

		ca.NEO = obj
		obj.Approaches = append(obj.Approaches, ca)
	}

	return &Database{
		byDesignation: byDes,
		objects:       objects,
		approaches:    approaches,
	}
}

// Load reads both NASA exports and returns the linked database.
func Load(neoPath, cadPath string) (*Database, error) {
	objects, err := LoadObjects(neoPath)
	if err != nil {
		return nil, err
	}

	approaches, err := LoadApproaches(cadPath)
	if err != nil {
		return nil, err
	}

	return NewDatabase(objects, approaches), nil
}

// Approaches returns every close approach in load order.
// Callers must not mutate the returned slice.
func (db *Database) Approaches() []*CloseApproach {
	return db.approaches
}

// Objects returns every object in load order.
// Callers must not mutate the returned slice.
func (db *Database) Objects() []*Object {
	return db.objects
}

// ObjectByDesignation returns the object with the given primary designation.
func (db *Database) ObjectByDesignation(designation string) (*Object, bool) {
	obj, ok := db.byDesignation[designation]

	return obj, ok
}
