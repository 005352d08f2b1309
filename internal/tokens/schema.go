package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/jmylchreest/boostkit/internal/colour"
)

var (
	// ErrUnknownRole is returned for a role name not in the schema.
	ErrUnknownRole = errors.New("unknown role")

	// ErrInvalidValue is returned when a value does not fit the role's kind.
	ErrInvalidValue = errors.New("invalid value")
)

// Kind is the value type of a role.
type Kind int

const (
	// KindColour holds an uppercase "#RRGGBB" string.
	KindColour Kind = iota
	// KindScale holds a non-negative float serialised with the role's Unit.
	KindScale
	// KindFlag holds a bool.
	KindFlag
	// KindText holds an opaque string. Hex values are normalised.
	KindText
	// KindAccent holds an AccentColour.
	KindAccent
	// KindBlob holds a large payload such as an image data URL. Blobs never
	// appear in generated SCSS.
	KindBlob
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindColour:
		return "colour"
	case KindScale:
		return "scale"
	case KindFlag:
		return "flag"
	case KindText:
		return "text"
	case KindAccent:
		return "accent"
	case KindBlob:
		return "blob"
	default:
		return "unknown"
	}
}

// Unit is the suffix a scale role is serialised with.
type Unit string

// Serialisation units.
const (
	UnitNone Unit = ""
	UnitPx   Unit = "px"
	UnitRem  Unit = "rem"
)

// Group clusters roles for display.
type Group string

// Display groups.
const (
	GroupBrand         Group = "brand"
	GroupNavbar        Group = "navbar"
	GroupButtons       Group = "buttons"
	GroupLinks         Group = "links"
	GroupContent       Group = "content"
	GroupLogin         Group = "login"
	GroupImages        Group = "images"
	GroupFooter        Group = "footer"
	GroupDrawers       Group = "drawers"
	GroupTypography    Group = "typography"
	GroupNavigation    Group = "navigation"
	GroupFeedback      Group = "feedback"
	GroupAccessibility Group = "accessibility"
	GroupActivityIcons Group = "activity icons"
)

// Field describes one role of the schema.
type Field struct {
	Role  Role
	Kind  Kind
	Unit  Unit
	Group Group
	Label string

	index int
}

var schema = []Field{
	{Role: BrandPrimary, Kind: KindColour, Group: GroupBrand, Label: "Brand primary"},

	{Role: NavbarBg, Kind: KindColour, Group: GroupNavbar, Label: "Navbar background"},
	{Role: NavbarText, Kind: KindColour, Group: GroupNavbar, Label: "Navbar text"},
	{Role: NavbarBorder, Kind: KindText, Group: GroupNavbar, Label: "Navbar bottom border"},
	{Role: NavActiveUnderline, Kind: KindColour, Group: GroupNavbar, Label: "Active nav underline"},
	{Role: NavHoverBg, Kind: KindText, Group: GroupNavbar, Label: "Nav hover overlay"},
	{Role: NavHoverText, Kind: KindColour, Group: GroupNavbar, Label: "Nav hover text"},
	{Role: EditModeOnColour, Kind: KindColour, Group: GroupNavbar, Label: "Edit mode switch on"},
	{Role: EditModeThumbColour, Kind: KindColour, Group: GroupNavbar, Label: "Edit mode switch thumb"},
	{Role: LogoAccentColour, Kind: KindAccent, Group: GroupNavbar, Label: "Logo accent"},

	{Role: BreadcrumbBg, Kind: KindText, Group: GroupContent, Label: "Breadcrumb background"},
	{Role: BtnPrimaryBg, Kind: KindColour, Group: GroupButtons, Label: "Primary button"},
	{Role: BtnPrimaryText, Kind: KindColour, Group: GroupButtons, Label: "Primary button text"},
	{Role: BtnPrimaryHover, Kind: KindColour, Group: GroupButtons, Label: "Primary button hover"},
	{Role: BtnRadius, Kind: KindScale, Unit: UnitPx, Group: GroupButtons, Label: "Button radius"},
	{Role: LinkColour, Kind: KindColour, Group: GroupLinks, Label: "Link"},
	{Role: LinkHover, Kind: KindColour, Group: GroupLinks, Label: "Link hover"},
	{Role: PageBg, Kind: KindColour, Group: GroupContent, Label: "Page background"},
	{Role: CardBg, Kind: KindColour, Group: GroupContent, Label: "Card background"},
	{Role: CardBorder, Kind: KindColour, Group: GroupContent, Label: "Card border"},
	{Role: ContentMaxWidth, Kind: KindScale, Unit: UnitPx, Group: GroupContent, Label: "Content max width"},
	{Role: SectionAccent, Kind: KindText, Group: GroupContent, Label: "Course section accent"},

	{Role: LoginBg, Kind: KindColour, Group: GroupLogin, Label: "Login background"},
	{Role: LoginCardBg, Kind: KindColour, Group: GroupLogin, Label: "Login card"},
	{Role: LoginHeading, Kind: KindColour, Group: GroupLogin, Label: "Login heading"},
	{Role: LoginBtnBg, Kind: KindColour, Group: GroupLogin, Label: "Login button"},
	{Role: LoginBtnText, Kind: KindColour, Group: GroupLogin, Label: "Login button text"},
	{Role: LoginInputRadius, Kind: KindScale, Unit: UnitPx, Group: GroupLogin, Label: "Input radius"},
	{Role: LoginGradientEnabled, Kind: KindFlag, Group: GroupLogin, Label: "Login gradient"},
	{Role: LoginGradientEnd, Kind: KindColour, Group: GroupLogin, Label: "Login gradient end"},
	{Role: SignupBtnBg, Kind: KindColour, Group: GroupLogin, Label: "Signup button"},
	{Role: BackgroundImage, Kind: KindBlob, Group: GroupImages, Label: "Background image"},
	{Role: LoginBgImage, Kind: KindBlob, Group: GroupImages, Label: "Login background image"},

	{Role: FooterBg, Kind: KindColour, Group: GroupFooter, Label: "Footer background"},
	{Role: FooterText, Kind: KindColour, Group: GroupFooter, Label: "Footer text"},
	{Role: FooterLink, Kind: KindColour, Group: GroupFooter, Label: "Footer link"},
	{Role: FooterAccent, Kind: KindText, Group: GroupFooter, Label: "Footer top border"},
	{Role: DrawerBg, Kind: KindColour, Group: GroupDrawers, Label: "Drawer background"},
	{Role: DrawerText, Kind: KindColour, Group: GroupDrawers, Label: "Drawer text"},
	{Role: DrawerBorder, Kind: KindColour, Group: GroupDrawers, Label: "Drawer border"},

	{Role: BodyFontSize, Kind: KindScale, Unit: UnitRem, Group: GroupTypography, Label: "Body font size"},
	{Role: HeadingScale, Kind: KindScale, Group: GroupTypography, Label: "Heading scale"},
	{Role: LineHeight, Kind: KindScale, Group: GroupTypography, Label: "Line height"},
	{Role: FontFamily, Kind: KindText, Group: GroupTypography, Label: "Font family"},
	{Role: FontWeight, Kind: KindScale, Group: GroupTypography, Label: "Font weight"},
	{Role: HeadingText, Kind: KindColour, Group: GroupTypography, Label: "Heading text"},
	{Role: BodyText, Kind: KindColour, Group: GroupTypography, Label: "Body text"},
	{Role: MutedText, Kind: KindColour, Group: GroupTypography, Label: "Muted text"},

	{Role: SecondaryNavActive, Kind: KindColour, Group: GroupNavigation, Label: "Secondary nav active"},
	{Role: SecondaryNavText, Kind: KindColour, Group: GroupNavigation, Label: "Secondary nav text"},
	{Role: Success, Kind: KindColour, Group: GroupFeedback, Label: "Success"},
	{Role: Warning, Kind: KindColour, Group: GroupFeedback, Label: "Warning"},
	{Role: Error, Kind: KindColour, Group: GroupFeedback, Label: "Error"},
	{Role: Info, Kind: KindColour, Group: GroupFeedback, Label: "Info"},
	{Role: ProgressFill, Kind: KindColour, Group: GroupFeedback, Label: "Progress bar"},
	{Role: FocusRing, Kind: KindColour, Group: GroupAccessibility, Label: "Focus ring"},
	{Role: FocusRingWidth, Kind: KindScale, Unit: UnitPx, Group: GroupAccessibility, Label: "Focus ring width"},

	{Role: ActIconAdministration, Kind: KindColour, Group: GroupActivityIcons, Label: "Administration icons"},
	{Role: ActIconAssessment, Kind: KindColour, Group: GroupActivityIcons, Label: "Assessment icons"},
	{Role: ActIconCollaboration, Kind: KindColour, Group: GroupActivityIcons, Label: "Collaboration icons"},
	{Role: ActIconCommunication, Kind: KindColour, Group: GroupActivityIcons, Label: "Communication icons"},
	{Role: ActIconContent, Kind: KindColour, Group: GroupActivityIcons, Label: "Content icons"},
	{Role: ActIconInterface, Kind: KindColour, Group: GroupActivityIcons, Label: "Interface icons"},
}

var byRole = make(map[Role]*Field, len(schema))

// init binds each schema entry to its Tokens field and panics when the two
// have drifted apart.
func init() {
	typ := reflect.TypeOf(Tokens{})
	fieldIndex := make(map[string]int, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		tag, _, _ := strings.Cut(typ.Field(i).Tag.Get("json"), ",")
		fieldIndex[tag] = i
	}

	if len(schema) != typ.NumField() {
		panic(fmt.Sprintf("tokens: schema has %d roles but Tokens has %d fields", len(schema), typ.NumField()))
	}

	for i := range schema {
		f := &schema[i]
		idx, ok := fieldIndex[string(f.Role)]
		if !ok {
			panic(fmt.Sprintf("tokens: role %q has no Tokens field", f.Role))
		}
		if want := goKind(f.Kind); typ.Field(idx).Type != want {
			panic(fmt.Sprintf("tokens: role %q is %s but field is %s", f.Role, want, typ.Field(idx).Type))
		}
		f.index = idx
		byRole[f.Role] = f
	}
}

func goKind(k Kind) reflect.Type {
	switch k {
	case KindScale:
		return reflect.TypeOf(float64(0))
	case KindFlag:
		return reflect.TypeOf(false)
	case KindAccent:
		return reflect.TypeOf(AccentColour{})
	default:
		return reflect.TypeOf("")
	}
}

// Schema returns every role in display and serialisation order.
func Schema() []Field {
	out := make([]Field, len(schema))
	copy(out, schema)
	return out
}

// Lookup returns the schema entry for role.
func Lookup(role Role) (Field, bool) {
	f, ok := byRole[role]
	if !ok {
		return Field{}, false
	}
	return *f, true
}

// Roles returns every role in schema order.
func Roles() []Role {
	roles := make([]Role, len(schema))
	for i, f := range schema {
		roles[i] = f.Role
	}
	return roles
}

// ParseRole resolves a role name case-insensitively.
func ParseRole(name string) (Role, error) {
	name = strings.TrimSpace(name)
	if _, ok := byRole[Role(name)]; ok {
		return Role(name), nil
	}
	for _, f := range schema {
		if strings.EqualFold(string(f.Role), name) {
			return f.Role, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// CSSVar returns the custom property name for role, e.g. "--theme-navbar-bg".
func CSSVar(role Role) string {
	var b strings.Builder
	b.WriteString("--theme-")
	for _, r := range string(role) {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Get returns the value of role as string, float64, bool or AccentColour.
func (t Tokens) Get(role Role) (any, bool) {
	f, ok := byRole[role]
	if !ok {
		return nil, false
	}
	return reflect.ValueOf(t).Field(f.index).Interface(), true
}

// Set assigns v to role after checking and normalising it for the role's kind.
func (t *Tokens) Set(role Role, v any) error {
	f, ok := byRole[role]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	nv, err := f.coerce(v)
	if err != nil {
		return err
	}
	reflect.ValueOf(t).Elem().Field(f.index).Set(reflect.ValueOf(nv))
	return nil
}

// Format returns the value of role as text, without a unit.
func (t Tokens) Format(role Role) string {
	v, ok := t.Get(role)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case AccentColour:
		return val.String()
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// Colour returns the hex colour held by role, or "" when the role holds a
// keyword or is not colour valued. Accent roles resolve Auto against bg.
func (t Tokens) Colour(role Role, bg string) string {
	v, ok := t.Get(role)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case AccentColour:
		return val.Resolve(bg)
	case string:
		if colour.IsHex(val) {
			return val
		}
	}
	return ""
}

// ParseValue converts user text into a value for role.
func ParseValue(role Role, s string) (any, error) {
	f, ok := byRole[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	s = strings.TrimSpace(s)
	switch f.Kind {
	case KindScale:
		num := strings.TrimSuffix(strings.TrimSuffix(s, string(UnitRem)), string(UnitPx))
		v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidValue, role, s)
		}
		return f.coerce(v)
	case KindFlag:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects true or false, got %q", ErrInvalidValue, role, s)
		}
		return v, nil
	case KindText:
		if role == FontFamily {
			if stack, ok := LookupFont(s); ok {
				return stack, nil
			}
		}
		return f.coerce(s)
	default:
		return f.coerce(s)
	}
}

// coerce checks v against the field kind and returns the normalised value.
func (f *Field) coerce(v any) (any, error) {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s %s", ErrInvalidValue, f.Role, fmt.Sprintf(format, args...))
	}

	switch f.Kind {
	case KindColour:
		s, ok := v.(string)
		if !ok {
			return nil, invalid("expects a hex colour, got %T", v)
		}
		hex, ok := colour.NormaliseHex(s)
		if !ok {
			return nil, invalid("expects a hex colour, got %q", s)
		}
		return hex, nil

	case KindText:
		s, ok := v.(string)
		if !ok {
			return nil, invalid("expects text, got %T", v)
		}
		s = strings.TrimSpace(s)
		if hex, ok := colour.NormaliseHex(s); ok && strings.HasPrefix(s, "#") {
			return hex, nil
		}
		return s, nil

	case KindBlob:
		s, ok := v.(string)
		if !ok {
			return nil, invalid("expects text, got %T", v)
		}
		return s, nil

	case KindScale:
		var n float64
		switch val := v.(type) {
		case float64:
			n = val
		case float32:
			n = float64(val)
		case int:
			n = float64(val)
		case int64:
			n = float64(val)
		case json.Number:
			parsed, err := val.Float64()
			if err != nil {
				return nil, invalid("expects a number, got %q", val)
			}
			n = parsed
		default:
			return nil, invalid("expects a number, got %T", v)
		}
		if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
			return nil, invalid("expects a non-negative number, got %v", n)
		}
		return n, nil

	case KindFlag:
		b, ok := v.(bool)
		if !ok {
			return nil, invalid("expects a boolean, got %T", v)
		}
		return b, nil

	case KindAccent:
		switch val := v.(type) {
		case AccentColour:
			if val.IsAuto() {
				return val, nil
			}
			return Explicit(val.Hex()), nil
		case string:
			a, err := ParseAccentColour(val)
			if err != nil {
				return nil, err
			}
			return a, nil
		default:
			return nil, invalid("expects auto or a hex colour, got %T", v)
		}
	}

	return nil, invalid("has unsupported kind %s", f.Kind)
}
