package pki

// A hand-rolled fake Provider so the codec, lifecycle and signing logic can
// be exercised without real cryptography.

type fakeMaterial struct {
	t        KeyType
	fields   [][]byte
	private  bool
	released bool
}

type fakeProvider struct {
	buildErr error
	signErr  error
	parseErr error

	parsed    *fakeMaterial
	parsedTyp KeyType

	built           int
	releases        int
	lastBuildFields [][]byte // retained as-is to observe scrubbing
}

func copyFields(fields [][]byte) [][]byte {
	out := make([][]byte, len(fields))
	for i, f := range fields {
		out[i] = append([]byte(nil), f...)
	}
	return out
}

func (f *fakeProvider) BuildPublicKey(t KeyType, fields [][]byte) (Material, error) {
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	f.built++
	f.lastBuildFields = fields
	return &fakeMaterial{t: t, fields: copyFields(fields)}, nil
}

func (f *fakeProvider) PublicKeyFields(m Material) ([][]byte, error) {
	return copyFields(m.(*fakeMaterial).fields), nil
}

func (f *fakeProvider) Duplicate(m Material, includePrivate bool) (Material, error) {
	fm := m.(*fakeMaterial)
	return &fakeMaterial{
		t:       fm.t,
		fields:  copyFields(fm.fields),
		private: fm.private && includePrivate,
	}, nil
}

func (f *fakeProvider) Sign(m Material, t KeyType, hashBuf []byte) ([]byte, error) {
	if f.signErr != nil {
		return nil, f.signErr
	}
	return append([]byte("sig:"), hashBuf...), nil
}

func (f *fakeProvider) ParsePrivateKey(text, passphrase []byte, cb AuthCallback) (Material, KeyType, error) {
	if f.parseErr != nil {
		return nil, KeyTypeUnknown, f.parseErr
	}
	m := f.parsed
	if m == nil {
		m = &fakeMaterial{private: true}
	}
	t := f.parsedTyp
	if t == KeyTypeUnknown {
		t = KeyTypeRSA
	}
	return m, t, nil
}

func (f *fakeProvider) Release(m Material) {
	f.releases++
	if fm, ok := m.(*fakeMaterial); ok {
		fm.released = true
	}
}

// newTestKey builds a Key directly, bypassing the codec.
func newTestKey(f *fakeProvider, t KeyType, fields [][]byte, private bool) *Key {
	flags := flagPublic
	if private {
		flags |= flagPrivate
	}
	return &Key{
		keyType:  t,
		flags:    flags,
		material: &fakeMaterial{t: t, fields: copyFields(fields), private: private},
		prov:     f,
	}
}
