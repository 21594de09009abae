package domain

// Option — конкретная позиция на складе (размер/цвет/фасовка варианта).
// Quantity в БД — авторитетный остаток; зеркало в кэше носит справочный характер.
type Option struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
	IsDefault  bool   `json:"is_default"`
}

// Variant — вариант товара (SKU) с набором опций.
type Variant struct {
	ID        string   `json:"id"`
	SKU       string   `json:"sku"`
	IsDefault bool     `json:"is_default"`
	Options   []Option `json:"options"`
}

// Product — товар продавца с вариантами и опциями.
type Product struct {
	ID        string    `json:"id"`
	VendorID  string    `json:"vendor_id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	ImageURLs []string  `json:"image_urls"`
	Variants  []Variant `json:"variants"`
}

// SelectDefault — выбирает элемент с установленным флагом «по умолчанию»;
// если флаг нигде не стоит — первый элемент; на пустом списке — (zero, false).
// Используется одинаково при проверке остатков, отображении корзины и сборке заказа.
func SelectDefault[T any](list []T, isDefault func(T) bool) (T, bool) {
	var zero T
	if len(list) == 0 {
		return zero, false
	}
	for _, el := range list {
		if isDefault(el) {
			return el, true
		}
	}
	return list[0], true
}

// DefaultVariant — вариант по умолчанию для товара.
func (p *Product) DefaultVariant() (Variant, bool) {
	return SelectDefault(p.Variants, func(v Variant) bool { return v.IsDefault })
}

// DefaultOption — опция по умолчанию внутри варианта.
func (v *Variant) DefaultOption() (Option, bool) {
	return SelectDefault(v.Options, func(o Option) bool { return o.IsDefault })
}

// Option — поиск опции по ID среди всех вариантов товара.
func (p *Product) Option(optionID string) (Option, bool) {
	for _, v := range p.Variants {
		for _, o := range v.Options {
			if o.ID == optionID {
				return o, true
			}
		}
	}
	return Option{}, false
}
