package response

import (
	"time"

	"hotel-booking/internal/domain/booking"

	"github.com/jinzhu/copier"
)

// copyOpts renders dates as YYYY-MM-DD when a view field lands on a string.
var copyOpts = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(booking.DateLayout), nil
			},
		},
	},
}

func copyInto[T any](src any) (*T, error) {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copyOpts); err != nil {
		return nil, err
	}
	return dst, nil
}

func copyAll[T any, S any](src []S) ([]*T, error) {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		d, err := copyInto[T](s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
