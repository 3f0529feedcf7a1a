package catalog

type Kind string

const (
	KindGrape       Kind = "GRAPE"
	KindDesignation Kind = "DESIGNATION"
)

var AllKinds = []Kind{KindGrape, KindDesignation}

func (k Kind) IsValid() bool {
	for _, v := range AllKinds {
		if k == v {
			return true
		}
	}
	return false
}
