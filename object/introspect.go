package object

import "fmt"

// Fallible introspection.
//
// An object captured from a failed program cannot be trusted: computing
// its representation or walking its attributes can run code of that
// program, which can fail in turn. Analysis code therefore never calls
// Inspect, AttrNames or GetAttr directly on objects it did not build
// itself. It calls the helpers below, which convert panics into errors
// and let the caller degrade gracefully (typically by omitting the
// information from the explanation).

// SafeInspect returns the object's representation, containing any panic
// raised while computing it. On failure a neutral placeholder naming the
// object's type is returned along with the error.
func SafeInspect(obj Object) (result string) {
	result, _ = TryInspect(obj)
	return result
}

// TryInspect is SafeInspect with the failure reported to the caller.
func TryInspect(obj Object) (result string, err error) {
	if obj == nil {
		return "<unknown>", nil
	}
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("<%s object (repr failed)>", obj.Type())
			err = fmt.Errorf("repr of %s object failed: %v", obj.Type(), r)
		}
	}()
	return obj.Inspect(), nil
}

// TryAttrNames returns the object's attribute names, containing any panic
// raised while collecting them.
func TryAttrNames(obj Object) (names []string, err error) {
	if obj == nil {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			names = nil
			err = fmt.Errorf("attribute listing of %s object failed: %v", obj.Type(), r)
		}
	}()
	return obj.AttrNames(), nil
}

// TryGetAttr resolves one attribute, containing any panic raised by the
// lookup.
func TryGetAttr(obj Object, name string) (value Object, found bool, err error) {
	if obj == nil {
		return nil, false, nil
	}
	defer func() {
		if r := recover(); r != nil {
			value = nil
			found = false
			err = fmt.Errorf("attribute %q of %s object failed: %v", name, obj.Type(), r)
		}
	}()
	value, found = obj.GetAttr(name)
	return value, found, nil
}

// HasAttr reports whether the attribute exists. Lookup failures count as
// absent.
func HasAttr(obj Object, name string) bool {
	_, found, err := TryGetAttr(obj, name)
	return err == nil && found
}

// TryLen returns the object's length if it has one.
func TryLen(obj Object) (length int, ok bool, err error) {
	container, isContainer := obj.(Container)
	if !isContainer {
		return 0, false, nil
	}
	defer func() {
		if r := recover(); r != nil {
			length = 0
			ok = false
			err = fmt.Errorf("len() of %s object failed: %v", obj.Type(), r)
		}
	}()
	return container.Len(), true, nil
}

// TryGetItem resolves obj[key], containing any panic raised by the lookup.
func TryGetItem(obj, key Object) (value Object, err error) {
	container, isContainer := obj.(Container)
	if !isContainer {
		return nil, fmt.Errorf("%s object is not subscriptable", obj.Type())
	}
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("subscript of %s object failed: %v", obj.Type(), r)
		}
	}()
	return container.GetItem(key)
}

// TryCall invokes a builtin, containing any panic it raises. Only
// builtins carried with an actual implementation are callable during
// analysis.
func TryCall(obj Object, args ...Object) (result Object, err error) {
	builtin, isBuiltin := obj.(*Builtin)
	if !isBuiltin {
		return nil, fmt.Errorf("%s object is not callable during analysis", obj.Type())
	}
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("call of %s failed: %v", builtin.Name(), r)
		}
	}()
	return builtin.Call(args...)
}
