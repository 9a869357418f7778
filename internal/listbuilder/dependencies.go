package listbuilder

//go:generate mockgen -source=dependencies.go -destination=mocks/dependencies.go -package=mocks

type intReader interface {
	ReadInt() (int64, error)
}

type metrics interface {
	NodeInserted()
	ListBuilt(length int)
}
