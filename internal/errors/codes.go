package errors

// Error codes for the cidl toolchain. Codes are stable so they can be
// referenced from documentation and editor diagnostics.
//
// Error code ranges:
// E0100-E0199: Scanner, parser and annotation errors
// E0400-E0499: Assembly errors
// E0800-E0899: Warning codes
// E0900-E0999: Tooling and configuration errors

const (
	// E0100: Bytes the lexer cannot classify
	ErrorUnexpectedCharacter = "E0100"

	// E0101: Declarations the parser skipped
	ErrorSkippedDeclaration = "E0101"

	// E0102: Malformed "#idl" directive text
	ErrorInvalidDirective = "E0102"

	// E0103: A well-formed directive in a place it cannot be used
	ErrorMisplacedDirective = "E0103"

	// E0400: The same discriminator name declared twice in one file
	ErrorDuplicateDiscriminator = "E0400"

	// E0401: An event or instruction declared without a discriminator
	ErrorMissingDiscriminator = "E0401"

	// E0402: A discriminator constant whose value is not a u64
	ErrorInvalidDiscriminatorValue = "E0402"

	// E0403: An event or struct whose first field is not "u64 discriminator"
	ErrorMissingDiscriminatorField = "E0403"

	// E0404: An ordinary field after a variable-length string
	ErrorFieldAfterString = "E0404"

	// E0405: An ordinary field after a generic-length array
	ErrorFieldAfterGenericArray = "E0405"

	// E0406: A reference to an account list that was never declared
	ErrorUnknownReference = "E0406"

	// E0407: An instruction discriminator without an instruction declaration
	ErrorUndeclaredInstruction = "E0407"

	// E0408: Two types, events or instructions with the same name
	ErrorDuplicateDeclaration = "E0408"

	// E0800: Annotation on a variable that is not a discriminator
	WarningIgnoredDirective = "E0800"

	// E0900: Program id is missing or not valid base58
	ErrorInvalidProgramID = "E0900"

	// E0901: Source tree cannot be read
	ErrorSourceUnreadable = "E0901"
)

// GetErrorDescription returns a human-readable description of an error code
func GetErrorDescription(code string) string {
	descriptions := map[string]string{
		ErrorUnexpectedCharacter:       "Unexpected character",
		ErrorSkippedDeclaration:        "Declaration could not be parsed",
		ErrorInvalidDirective:          "Invalid #idl directive",
		ErrorMisplacedDirective:        "Directive not allowed here",
		ErrorDuplicateDiscriminator:    "Duplicate discriminator",
		ErrorMissingDiscriminator:      "Missing discriminator",
		ErrorInvalidDiscriminatorValue: "Invalid discriminator value",
		ErrorMissingDiscriminatorField: "Missing discriminator field",
		ErrorFieldAfterString:          "Field after string",
		ErrorFieldAfterGenericArray:    "Field after generic array",
		ErrorUnknownReference:          "Unknown account reference",
		ErrorUndeclaredInstruction:     "Instruction not declared",
		ErrorDuplicateDeclaration:      "Duplicate declaration",
		WarningIgnoredDirective:        "Directive ignored",
		ErrorInvalidProgramID:          "Invalid program id",
		ErrorSourceUnreadable:          "Source tree unreadable",
	}

	if desc, exists := descriptions[code]; exists {
		return desc
	}
	return "Unknown error"
}

// IsWarning checks if an error code represents a warning
func IsWarning(code string) bool {
	return len(code) == 5 && code[:3] == "E08"
}
