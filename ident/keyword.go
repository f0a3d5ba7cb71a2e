package ident

// Keyword is a recognized YANG statement keyword tag.
type Keyword int

const (
	KeywordNone Keyword = iota
	KeywordCustomExtension
	KwModule
	KwSubmodule
	KwImport
	KwInclude
	KwBelongsTo
	KwPrefix
	KwNamespace
	KwRevision
	KwRevisionDate
	KwTypedef
	KwType
	KwGrouping
	KwUses
	KwContainer
	KwLeaf
	KwLeafList
	KwList
	KwChoice
	KwCase
	KwAnyxml
	KwAnydata
	KwAugment
	KwDeviation
	KwDeviate
	KwRPC
	KwAction
	KwNotification
	KwInput
	KwOutput
	KwFeature
	KwIfFeature
	KwIdentity
	KwBase
	KwExtension
	KwArgument
	KwYinElement
	KwStatus
	KwDescription
	KwReference
	KwOrganization
	KwContact
	KwDefault
	KwConfig
	KwMandatory
	KwMinElements
	KwMaxElements
	KwOrderedBy
	KwKey
	KwUnique
	KwPresence
	KwWhen
	KwMust
	KwErrorAppTag
	KwErrorMessage
	KwPath
	KwPattern
	KwLength
	KwRange
	KwEnum
	KwBit
	KwValue
	KwPosition
	KwFractionDigits
	KwRequireInstance
	KwModifier
	KwUnits
	KwRefine
	KwYangVersion
)

// keywords is the closed set of ~70 YANG statement keywords, checked by
// direct map lookup for exact-match-or-miss semantics.
var keywords = map[string]Keyword{
	"module":            KwModule,
	"submodule":         KwSubmodule,
	"import":            KwImport,
	"include":           KwInclude,
	"belongs-to":        KwBelongsTo,
	"prefix":            KwPrefix,
	"namespace":         KwNamespace,
	"revision":          KwRevision,
	"revision-date":     KwRevisionDate,
	"typedef":           KwTypedef,
	"type":              KwType,
	"grouping":          KwGrouping,
	"uses":              KwUses,
	"container":         KwContainer,
	"leaf":              KwLeaf,
	"leaf-list":         KwLeafList,
	"list":              KwList,
	"choice":            KwChoice,
	"case":              KwCase,
	"anyxml":            KwAnyxml,
	"anydata":           KwAnydata,
	"augment":           KwAugment,
	"deviation":         KwDeviation,
	"deviate":           KwDeviate,
	"rpc":               KwRPC,
	"action":            KwAction,
	"notification":      KwNotification,
	"input":             KwInput,
	"output":            KwOutput,
	"feature":           KwFeature,
	"if-feature":        KwIfFeature,
	"identity":          KwIdentity,
	"base":              KwBase,
	"extension":         KwExtension,
	"argument":          KwArgument,
	"yin-element":       KwYinElement,
	"status":            KwStatus,
	"description":       KwDescription,
	"reference":         KwReference,
	"organization":      KwOrganization,
	"contact":           KwContact,
	"default":           KwDefault,
	"config":            KwConfig,
	"mandatory":         KwMandatory,
	"min-elements":      KwMinElements,
	"max-elements":      KwMaxElements,
	"ordered-by":        KwOrderedBy,
	"key":               KwKey,
	"unique":            KwUnique,
	"presence":          KwPresence,
	"when":              KwWhen,
	"must":              KwMust,
	"error-app-tag":     KwErrorAppTag,
	"error-message":     KwErrorMessage,
	"path":              KwPath,
	"pattern":           KwPattern,
	"length":            KwLength,
	"range":             KwRange,
	"enum":              KwEnum,
	"bit":               KwBit,
	"value":             KwValue,
	"position":          KwPosition,
	"fraction-digits":   KwFractionDigits,
	"require-instance":  KwRequireInstance,
	"modifier":          KwModifier,
	"units":             KwUnits,
	"refine":            KwRefine,
	"yang-version":      KwYangVersion,
}

// RecognizeKeyword matches a statement keyword given its bytes and
// prefix length.
//
// If prefixLen > 0, the keyword is prefixed (e.g. "acme:my-ext") and is
// therefore unconditionally a vendor extension: any prefixed keyword is
// an extension, never one of the built-in statements. Otherwise s is
// matched against the closed keyword set; matching is exact, so a
// prefix match that is shorter than s (e.g. "leafx" against "leaf")
// returns KeywordNone, never the shorter keyword's tag.
func RecognizeKeyword(s string, prefixLen int) Keyword {
	if prefixLen > 0 {
		return KeywordCustomExtension
	}
	if kw, ok := keywords[s]; ok {
		return kw
	}
	return KeywordNone
}
