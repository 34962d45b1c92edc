package toast

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
)

type Props struct {
	Title       string
	Description string
	Variant     Variant
	Icon        bool
	Dismissible bool
	// Link is an optional call to action shown under the description.
	Link      string
	LinkLabel string
}

var variantClasses = map[Variant]string{
	VariantDefault: "border-slate-200 bg-white text-slate-900",
	VariantSuccess: "border-emerald-200 bg-emerald-50 text-emerald-900",
	VariantError:   "border-red-200 bg-red-50 text-red-900",
	VariantWarning: "border-amber-200 bg-amber-50 text-amber-900",
}

var variantIcons = map[Variant]string{
	VariantDefault: "ℹ",
	VariantSuccess: "✓",
	VariantError:   "!",
	VariantWarning: "⚠",
}

func (p Props) variant() Variant {
	if p.Variant == "" {
		return VariantDefault
	}
	return p.Variant
}
