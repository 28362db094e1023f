package content

// Key names one piece of localized UI copy. The set is closed: code refers to
// keys only through the constants below, and a mapping that names anything
// else is rejected when it is loaded.
type Key string

const (
	KeyName        Key = "name"
	KeyType        Key = "type"
	KeyDescription Key = "description"
	KeyProps       Key = "props"
	KeyReturn      Key = "return"
	KeyRules       Key = "rules"
	KeyExamples    Key = "examples"
	KeyTips        Key = "tips"
	KeyTypeScript  Key = "typescript"
	KeyCondition   Key = "condition"
	KeyCopy        Key = "copy"
	KeyCopied      Key = "copied"
	KeySandbox     Key = "sandbox"
	KeyStarRepo    Key = "starRepo"
	KeyFooter      Key = "footer"
	KeyLanguage    Key = "language"
	KeyHomeTitle   Key = "homeTitle"
	KeyHomeIntro   Key = "homeIntro"
	KeyNotFound    Key = "notFound"
	KeyServerError Key = "serverError"

	KeyBuilderTitle       Key = "builderTitle"
	KeyBuilderDescription Key = "builderDescription"
	KeyBuilderFieldName   Key = "builderFieldName"
	KeyBuilderFieldType   Key = "builderFieldType"
	KeyBuilderRequired    Key = "builderRequired"
	KeyBuilderAdd         Key = "builderAdd"
	KeyBuilderDelete      Key = "builderDelete"
	KeyBuilderReset       Key = "builderReset"
	KeyBuilderEmpty       Key = "builderEmpty"
	KeyBuilderCode        Key = "builderCode"
	KeyBuilderAdded       Key = "builderAdded"
	KeyBuilderInvalid     Key = "builderInvalid"
	KeyBuilderRules       Key = "builderRules"
)

var knownKeys = []Key{
	KeyName,
	KeyType,
	KeyDescription,
	KeyProps,
	KeyReturn,
	KeyRules,
	KeyExamples,
	KeyTips,
	KeyTypeScript,
	KeyCondition,
	KeyCopy,
	KeyCopied,
	KeySandbox,
	KeyStarRepo,
	KeyFooter,
	KeyLanguage,
	KeyHomeTitle,
	KeyHomeIntro,
	KeyNotFound,
	KeyServerError,
	KeyBuilderTitle,
	KeyBuilderDescription,
	KeyBuilderFieldName,
	KeyBuilderFieldType,
	KeyBuilderRequired,
	KeyBuilderAdd,
	KeyBuilderDelete,
	KeyBuilderReset,
	KeyBuilderEmpty,
	KeyBuilderCode,
	KeyBuilderAdded,
	KeyBuilderInvalid,
	KeyBuilderRules,
}

var knownKeySet = func() map[Key]struct{} {
	set := make(map[Key]struct{}, len(knownKeys))
	for _, k := range knownKeys {
		set[k] = struct{}{}
	}
	return set
}()

// Keys returns every known key in declaration order.
func Keys() []Key {
	out := make([]Key, len(knownKeys))
	copy(out, knownKeys)
	return out
}

// Known reports whether k belongs to the enumeration.
func (k Key) Known() bool {
	_, ok := knownKeySet[k]
	return ok
}

func (k Key) String() string { return string(k) }
