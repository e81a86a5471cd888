package check

import (
	"fmt"
	"reflect"

	"attest/internal/cause"
	"attest/internal/classify"
	"attest/internal/conf"
	"attest/internal/spec"
)

// satisfies is the boolean walk: no string building, no allocation of
// explanation state. It must agree with the diagnosers on every
// semantic question — in sampled mode it visits exactly the indices
// cause.SampleIndices yields for the same seed, so a later diagnosis
// replays the identical sample.
func satisfies(subject any, raw spec.Raw, label string, cfg *conf.Config, seed *uint64, depth int) (bool, error) {
	if depth > cfg.MaxDepth {
		return false, fmt.Errorf("%w: %s specification nesting exceeds %d levels",
			spec.ErrMalformed, label, cfg.MaxDepth)
	}
	normalized, err := spec.Normalize(raw, label)
	if err != nil {
		return false, err
	}
	cls, err := classify.Classify(normalized)
	if err != nil {
		return false, err
	}

	switch cls.Family {
	case classify.FamilyIgnorable:
		return true, nil
	case classify.FamilyUntagged:
		if len(cls.Types) > 0 {
			for _, t := range cls.Types {
				if cause.IsInstance(subject, t) {
					return true, nil
				}
			}
			return false, nil
		}
		return cause.IsInstance(subject, cls.Type), nil
	}

	if kinds := classify.OriginKinds(cls.Sign); len(kinds) > 0 &&
		(len(cls.Children) == 0 || !classify.DeepCheckable(cls.Sign)) {
		return kindMatches(subject, kinds), nil
	}

	switch cls.Sign {
	case spec.SignUnion:
		for _, member := range cls.Children {
			ok, err := satisfies(subject, member, label, cfg, seed, depth+1)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil

	case spec.SignSequence:
		v := reflect.ValueOf(subject)
		if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
			return false, nil
		}
		for _, i := range visitIndices(cfg, seed, v.Len()) {
			ok, err := satisfies(v.Index(i).Interface(), cls.Children[0], label, cfg, seed, depth+1)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil

	case spec.SignTuple:
		v := reflect.ValueOf(subject)
		if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
			return false, nil
		}
		if v.Len() != len(cls.Children) {
			return false, nil
		}
		for i, slot := range cls.Children {
			ok, err := satisfies(v.Index(i).Interface(), slot, label, cfg, seed, depth+1)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil

	case spec.SignMapping:
		v := reflect.ValueOf(subject)
		if !v.IsValid() || v.Kind() != reflect.Map {
			return false, nil
		}
		keys := cause.SortedMapKeys(v)
		for _, i := range visitIndices(cfg, seed, len(keys)) {
			key := keys[i]
			ok, err := satisfies(key.Interface(), cls.Children[0], label, cfg, seed, depth+1)
			if err != nil || !ok {
				return false, err
			}
			ok, err = satisfies(v.MapIndex(key).Interface(), cls.Children[1], label, cfg, seed, depth+1)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil

	case spec.SignLiteral:
		for _, lit := range cls.Node.Literals() {
			if cause.LiteralsEqual(subject, lit) {
				return true, nil
			}
		}
		return false, nil

	default:
		// The walk claims nothing about shapes it cannot check; the
		// catalog gap surfaces as the same error diagnosis would raise.
		return false, fmt.Errorf("%w: %q (%s)", cause.ErrUnsupportedSign, cls.SignLabel(), label)
	}
}

func visitIndices(cfg *conf.Config, seed *uint64, n int) []int {
	if cfg.Mode == conf.ModeSampled && seed != nil {
		return cause.SampleIndices(*seed, n, cfg.SampleSize)
	}
	return cause.SampleIndices(0, n, 0)
}

func kindMatches(subject any, kinds []reflect.Kind) bool {
	v := reflect.ValueOf(subject)
	if !v.IsValid() {
		return false
	}
	for _, k := range kinds {
		if v.Kind() == k {
			return true
		}
	}
	return false
}
