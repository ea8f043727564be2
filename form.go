package websoup

// Form holds the fields harvested from an HTML form, ready to be merged
// with user-supplied values (credentials, search terms) and submitted.
// Hidden fields such as CSRF tokens are included.
type Form struct {
	// Action is the form's action attribute, "" if absent.
	Action string

	// Method is the form's method attribute, "" if absent.
	Method string

	// Fields maps each named control to its value attribute ("" when
	// the control has no value).
	Fields map[string]string
}

// NameValuePairs harvests name/value pairs from every descendant of el
// with the given tag name (typically "input"). Controls without a name
// attribute are skipped; controls without a value map to "".
func NameValuePairs(el Element, tag string) map[string]string {
	pairs := make(map[string]string)
	for _, control := range el.Select(tag) {
		name, ok := control.Attr("name")
		if !ok || name == "" {
			continue
		}
		value, _ := control.Attr("value")
		pairs[name] = value
	}
	return pairs
}

// ExtractForm locates the first form matching query in doc and harvests
// its input and button fields. Returns ENOTFOUND if no element matches.
func ExtractForm(doc Document, query string) (*Form, error) {
	el, ok := doc.SelectOne(query)
	if !ok {
		return nil, Errorf(ENOTFOUND, "no form matches %q", query)
	}

	fields := NameValuePairs(el, "input")
	for name, value := range NameValuePairs(el, "button") {
		if _, exists := fields[name]; !exists {
			fields[name] = value
		}
	}

	form := &Form{Fields: fields}
	form.Action, _ = el.Attr("action")
	form.Method, _ = el.Attr("method")
	return form, nil
}
