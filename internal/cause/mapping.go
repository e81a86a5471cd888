package cause

import (
	"fmt"
	"reflect"
)

// diagnoseMapping checks keys against the key specification and values
// against the value specification, visiting entries in deterministic
// key order. The explanation names whether the key or the value
// failed.
func diagnoseMapping(c *Context) (Finding, error) {
	v := reflect.ValueOf(c.subject)
	if !v.IsValid() || v.Kind() != reflect.Map {
		return diagnoseShallowOrigin(c)
	}
	keySpec, valSpec := c.cls.Children[0], c.cls.Children[1]

	keys := SortedMapKeys(v)
	for _, i := range c.visitIndices(len(keys)) {
		key := keys[i]

		kc, err := c.descend(key.Interface(), keySpec)
		if err != nil {
			return Finding{}, err
		}
		kf, err := kc.Diagnose()
		if err != nil {
			return Finding{}, err
		}
		if kf.Found {
			return found(fmt.Sprintf("key %s is invalid:\n%s%s",
				c.repr(key.Interface()), kc.Indent(), kf.Text)), nil
		}

		vc, err := c.descend(v.MapIndex(key).Interface(), valSpec)
		if err != nil {
			return Finding{}, err
		}
		vf, err := vc.Diagnose()
		if err != nil {
			return Finding{}, err
		}
		if vf.Found {
			return found(fmt.Sprintf("value under key %s is invalid:\n%s%s",
				c.repr(key.Interface()), vc.Indent(), vf.Text)), nil
		}
	}
	return Finding{}, nil
}
