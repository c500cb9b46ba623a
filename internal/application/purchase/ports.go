package purchase

type IDGenerator interface {
	NewID() string
}
