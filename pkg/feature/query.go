package feature

// Search field keys understood by the catalog search backend.
const (
	KeyProvideFeature = "wlpInformation.provideFeature"
	KeyRequireFeature = "wlpInformation.requireFeature"
	KeySupersededBy   = "wlpInformation.supersededBy"
	KeyShortName      = "wlpInformation.shortName"
	KeyMinVersion     = "wlpInformation.appliesToFilterInfo.minVersion.value"
	KeyType           = "type"
)

// Criterion is a single key/value match. A nil Value matches null.
type Criterion struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}

// QuerySpec is an ordered set of criteria that must all match.
type QuerySpec []Criterion

// Lookup returns the value stored for key. ok is false when key is absent;
// a present null criterion returns a nil value with ok set.
func (q QuerySpec) Lookup(key string) (value *string, ok bool) {
	for _, c := range q {
		if c.Key == key {
			return c.Value, true
		}
	}
	return nil, false
}

func match(key, value string) Criterion {
	return Criterion{Key: key, Value: &value}
}

// versioned appends the minimum version criterion when one was resolved.
func versioned(q QuerySpec, version string, ok bool) QuerySpec {
	if ok {
		q = append(q, match(KeyMinVersion, version))
	}
	return q
}

// EnablesQuery finds the features providing what f requires, one query per
// required feature. It is nil when f declares no requirement list.
func (f *Feature) EnablesQuery() []QuerySpec {
	if f.RequireFeature == nil {
		return nil
	}
	version, ok := FindVersion(f.AppliesToFilters)
	query := make([]QuerySpec, 0, len(f.RequireFeature))
	for _, required := range f.RequireFeature {
		q := versioned(QuerySpec{match(KeyProvideFeature, required)}, version, ok)
		query = append(query, append(q, match(KeyType, string(f.Type))))
	}
	return query
}

// EnabledByQuery finds the features requiring what f provides. It always
// holds exactly one query; the match value is null when f provides nothing.
func (f *Feature) EnabledByQuery() []QuerySpec {
	c := Criterion{Key: KeyRequireFeature}
	if name, ok := f.ProvideFeature(); ok {
		c = match(KeyRequireFeature, name)
	}
	version, ok := FindVersion(f.AppliesToFilters)
	q := versioned(QuerySpec{c}, version, ok)
	return []QuerySpec{append(q, match(KeyType, string(f.Type)))}
}

// SupersedesQuery finds the features declaring themselves superseded by f.
// Supersession is only discoverable by running the query, so it is built
// whenever f has a short name, and carries no type criterion. It is nil
// without a short name.
func (f *Feature) SupersedesQuery() []QuerySpec {
	if f.ShortName == "" {
		return nil
	}
	version, ok := FindVersion(f.AppliesToFilters)
	return []QuerySpec{versioned(QuerySpec{match(KeySupersededBy, f.ShortName)}, version, ok)}
}

// SupersededByQuery finds the features that supersede f. It is nil when f
// declares no superseded-by list.
func (f *Feature) SupersededByQuery() []QuerySpec {
	return f.shortNameQuery(f.SupersededBy)
}

// SupersededByOptionalQuery finds the features that optionally supersede f.
// It is nil when f declares no optional superseded-by list.
func (f *Feature) SupersededByOptionalQuery() []QuerySpec {
	return f.shortNameQuery(f.SupersededByOptional)
}

// shortNameQuery matches each name by short name. Unlike the other queries
// the version and type criteria are only added together, and only when a
// version was resolved; the type is always the feature type, not f.Type.
func (f *Feature) shortNameQuery(names []string) []QuerySpec {
	if names == nil {
		return nil
	}
	version, ok := FindVersion(f.AppliesToFilters)
	query := make([]QuerySpec, 0, len(names))
	for _, name := range names {
		q := QuerySpec{match(KeyShortName, name)}
		if ok {
			q = append(q, match(KeyMinVersion, version), match(KeyType, string(TypeFeature)))
		}
		query = append(query, q)
	}
	return query
}
