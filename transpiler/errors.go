package transpiler

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/insomnimus/mdtree/ast"
	"github.com/insomnimus/mdtree/lexer"
)

const (
	codeUnbalancedDelimiter = "MARKDOWN_UNBALANCED_DELIMITER"
	codeInvalidNodeShape    = "NODE_INVALID_SHAPE"
	codeInvalidInput        = "MARKDOWN_INVALID_INPUT"
	codeIOFailed            = "TRANSPILE_IO_FAILED"
)

// wrapError tags conversion failures: malformed markdown is a validation
// error, a broken node tree is internal.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, lexer.ErrUnbalancedDelimiter):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "malformed markdown").
			WithTextCode(codeUnbalancedDelimiter)
	case errors.Is(err, ast.ErrInvalidNodeShape):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "invalid html node tree").
			WithTextCode(codeInvalidNodeShape)
	default:
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid markdown input").
			WithTextCode(codeInvalidInput)
	}
}

func wrapIOError(err error, message string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).
		WithTextCode(codeIOFailed)
}
