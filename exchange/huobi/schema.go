package huobi

//
// field binds one member of a response item to a slot of the record being built. When self is set,
// the item as a whole is the value (e.g. the bare strings of the currencies endpoint) and key only
// names it in errors.
//
type field[T any] struct {
	key  string
	self bool
	set  func(record *T, raw interface{}) error
}

//
// schema is the ordered list of fields that make up one record type.
//
type schema[T any] struct {
	record string
	fields []field[T]
}

func bind[T, V any](key string, extract func(interface{}) (V, error), slot func(*T) *V) field[T] {
	return field[T]{
		key: key,
		set: func(record *T, raw interface{}) error {
			v, err := extract(raw)
			if err != nil {
				return err
			}

			*slot(record) = v

			return nil
		},
	}
}

func bindItem[T, V any](name string, extract func(interface{}) (V, error), slot func(*T) *V) field[T] {
	f := bind(name, extract, slot)
	f.self = true

	return f
}

var symbolSchema = schema[Symbol]{
	record: "symbol",
	fields: []field[Symbol]{
		bind("base-currency", extractText, func(o *Symbol) *string { return &o.BaseCurrency }),
		bind("quote-currency", extractText, func(o *Symbol) *string { return &o.QuoteCurrency }),
		bind("price-precision", extractPrecision, func(o *Symbol) *int64 { return &o.PricePrecision }),
		bind("amount-precision", extractPrecision, func(o *Symbol) *int64 { return &o.AmountPrecision }),
		bind("symbol-partition", extractText, func(o *Symbol) *string { return &o.SymbolPartition }),
		bind("symbol", extractText, func(o *Symbol) *string { return &o.Symbol }),
	},
}

var currencySchema = schema[Currency]{
	record: "currency",
	fields: []field[Currency]{
		bindItem("quote-currency", extractText, func(o *Currency) *string { return &o.QuoteCurrency }),
	},
}

var accountSchema = schema[Account]{
	record: "account",
	fields: []field[Account]{
		bind("id", extractInteger, func(o *Account) *int64 { return &o.ID }),
		bind("type", extractText, func(o *Account) *string { return &o.Type }),
		bind("state", extractText, func(o *Account) *string { return &o.State }),
		bind("user-id", extractInteger, func(o *Account) *int64 { return &o.UserID }),
	},
}

// TS comes from the envelope, see Client.ListTickers.
var tickerSchema = schema[Ticker]{
	record: "ticker",
	fields: []field[Ticker]{
		bind("open", extractNumber, func(o *Ticker) *Number { return &o.Open }),
		bind("close", extractNumber, func(o *Ticker) *Number { return &o.Close }),
		bind("low", extractNumber, func(o *Ticker) *Number { return &o.Low }),
		bind("high", extractNumber, func(o *Ticker) *Number { return &o.High }),
		bind("amount", extractNumber, func(o *Ticker) *Number { return &o.Amount }),
		bind("count", extractNumber, func(o *Ticker) *Number { return &o.Count }),
		bind("vol", extractNumber, func(o *Ticker) *Number { return &o.Vol }),
		bind("symbol", extractText, func(o *Ticker) *string { return &o.Symbol }),
	},
}

//
// parse converts the "data" member of an envelope into records, in order. Either every item parses
// or the first violation is returned and no records are.
//
func (o schema[T]) parse(data interface{}) ([]T, error) {
	items, err := extractArray(data)
	if err != nil {
		return nil, o.fail(-1, "data", err)
	}

	records := make([]T, 0, len(items))

	for i, item := range items {
		var record T

		for _, f := range o.fields {
			raw := item

			if !f.self {
				obj, ok := item.(map[string]interface{})
				if !ok {
					return nil, o.fail(i, "", invalid("expected an object but got %s", describe(item)))
				}

				raw = obj[f.key]
			}

			if err := f.set(&record, raw); err != nil {
				return nil, o.fail(i, f.key, err)
			}
		}

		records = append(records, record)
	}

	return records, nil
}

func (o schema[T]) fail(index int, key string, err error) error {
	ret := &ValidationError{
		Record: o.record,
		Index:  index,
		Field:  key,
		Reason: err.Error(),
	}

	if v, ok := err.(*ValidationError); ok {
		ret.Reason = v.Reason
	}

	return ret
}
