package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"
)

// ErrNoDecideFunc is returned when a script does not define decide()
var ErrNoDecideFunc = errors.New("script must define a 'decide' function")

// DefaultDecideBudget bounds a single decide() call. A call that runs
// longer is interrupted and reported as an error.
const DefaultDecideBudget = 50 * time.Millisecond

// ScriptRunner executes an opponent script with goja. The script is
// compiled once; decide() is called against a single runtime guarded by a
// mutex since goja runtimes are not safe for concurrent use.
type ScriptRunner struct {
	mu     sync.Mutex
	vm     *goja.Runtime
	decide goja.Callable
	budget time.Duration
}

// NewScriptRunner compiles code and resolves its decide function
func NewScriptRunner(name, code string) (*ScriptRunner, error) {
	program, err := goja.Compile(name, code, true)
	if err != nil {
		return nil, fmt.Errorf("script parse error: %w", err)
	}

	vm := goja.New()
	if _, err := vm.RunProgram(program); err != nil {
		return nil, fmt.Errorf("script execution failed: %w", err)
	}

	decideVal := vm.Get("decide")
	if decideVal == nil || goja.IsUndefined(decideVal) || goja.IsNull(decideVal) {
		return nil, ErrNoDecideFunc
	}
	decide, ok := goja.AssertFunction(decideVal)
	if !ok {
		return nil, fmt.Errorf("'decide' must be a function: %w", ErrNoDecideFunc)
	}

	return &ScriptRunner{vm: vm, decide: decide, budget: DefaultDecideBudget}, nil
}

// SetBudget changes how long a decide() call may run
func (r *ScriptRunner) SetBudget(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.budget = d
}

// Decide calls decide(view) and converts its result to a Decision. The
// result may be an object {up, down} or a number: negative for up,
// positive for down, zero for no movement.
func (r *ScriptRunner) Decide(view OpponentView) (Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	viewJSON, err := json.Marshal(view)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to serialize view: %w", err)
	}
	var arg map[string]any
	if err := json.Unmarshal(viewJSON, &arg); err != nil {
		return Decision{}, fmt.Errorf("failed to serialize view: %w", err)
	}

	result, err := r.call(arg)
	if err != nil {
		return Decision{}, fmt.Errorf("decide function failed: %w", err)
	}
	if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
		return Decision{}, nil
	}

	switch v := result.Export().(type) {
	case int64:
		return decisionFromNumber(float64(v)), nil
	case float64:
		return decisionFromNumber(v), nil
	}

	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return Decision{}, fmt.Errorf("failed to serialize result: %w", err)
	}
	var d Decision
	if err := json.Unmarshal(resultJSON, &d); err != nil {
		return Decision{}, fmt.Errorf("failed to parse script result: %w (result: %s)", err, string(resultJSON))
	}
	return d, nil
}

// call runs decide(arg), interrupting the runtime once the budget is spent
func (r *ScriptRunner) call(arg map[string]any) (goja.Value, error) {
	reason := "decide timed out after " + r.budget.String()
	fired := make(chan struct{})
	timer := time.AfterFunc(r.budget, func() {
		r.vm.Interrupt(reason)
		close(fired)
	})

	result, err := r.decide(goja.Undefined(), r.vm.ToValue(arg))

	if !timer.Stop() {
		<-fired
	}
	r.vm.ClearInterrupt()
	return result, err
}

func decisionFromNumber(v float64) Decision {
	switch {
	case v < 0:
		return Decision{Up: true}
	case v > 0:
		return Decision{Down: true}
	}
	return Decision{}
}
