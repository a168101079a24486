package oracle

/*
#cgo LDFLAGS: -lz3
#include <stdlib.h>
#include <z3.h>
*/
import "C"

import (
	"os"
	"strconv"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Ensure Z3 implements interface.
var _ Oracle = (*Z3)(nil)

// Z3 solves SMT-LIB2 files with an embedded libz3. Every call builds and
// tears down its own config, context and solver.
type Z3 struct {
	// Timeout in milliseconds passed to the context config. Zero means none.
	Timeout uint
}

func NewZ3(timeout uint) *Z3 {
	return &Z3{Timeout: timeout}
}

func (z *Z3) Solve(path string) (Verdict, error) {
	if _, err := os.Stat(path); err != nil {
		return UNDEF, errors.Wrapf(ErrMalformedQuery, "reading '%s': %s", path, err)
	}

	logrus.Debugf("z3: acquiring solver for '%s'", path)
	s, err := newSession(z.Timeout)
	if err != nil {
		return UNDEF, err
	}
	defer func() {
		s.close()
		logrus.Debugf("z3: released solver for '%s'", path)
	}()

	if err := s.load(path); err != nil {
		return UNDEF, err
	}
	v, reason := s.check()
	if v == UNDEF {
		logrus.Debugf("z3: '%s' undetermined: %s", path, reason)
	}
	return v, nil
}

type session struct {
	ctx    C.Z3_context
	solver C.Z3_solver
}

func newSession(timeout uint) (*session, error) {
	cfg := C.Z3_mk_config()
	if cfg == nil {
		return nil, errors.Wrap(ErrResourceAcquisition, "Z3_mk_config")
	}
	defer C.Z3_del_config(cfg)
	if timeout > 0 {
		setParam(cfg, "timeout", strconv.FormatUint(uint64(timeout), 10))
	}

	ctx := C.Z3_mk_context(cfg)
	if ctx == nil {
		return nil, errors.Wrap(ErrResourceAcquisition, "Z3_mk_context")
	}
	// errors are polled with Z3_get_error_code instead of aborting
	C.Z3_set_error_handler(ctx, nil)

	solver := C.Z3_mk_solver(ctx)
	if code := C.Z3_get_error_code(ctx); solver == nil || code != C.Z3_OK {
		msg := errorMessage(ctx, code)
		C.Z3_del_context(ctx)
		return nil, errors.Wrapf(ErrResourceAcquisition, "Z3_mk_solver: %s", msg)
	}
	C.Z3_solver_inc_ref(ctx, solver)
	return &session{ctx: ctx, solver: solver}, nil
}

func setParam(cfg C.Z3_config, name, value string) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))
	C.Z3_set_param_value(cfg, cname, cvalue)
}

func (s *session) load(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	C.Z3_solver_from_file(s.ctx, s.solver, cpath)
	if code := C.Z3_get_error_code(s.ctx); code != C.Z3_OK {
		return errors.Wrapf(ErrMalformedQuery, "'%s': %s", path, errorMessage(s.ctx, code))
	}
	return nil
}

func (s *session) check() (Verdict, string) {
	res := C.Z3_solver_check(s.ctx, s.solver)
	v := verdictOf(lbool(res))
	if v != UNDEF {
		return v, ""
	}
	return v, C.GoString(C.Z3_solver_get_reason_unknown(s.ctx, s.solver))
}

func (s *session) close() {
	C.Z3_solver_dec_ref(s.ctx, s.solver)
	C.Z3_del_context(s.ctx)
}

func errorMessage(ctx C.Z3_context, code C.Z3_error_code) string {
	return C.GoString(C.Z3_get_error_msg(ctx, code))
}
