package systems

import (
	"github.com/automoto/landing/components"
	"github.com/automoto/landing/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// hitCellSize is the resolv broadphase cell; exact containment is checked after.
const hitCellSize = 8

// resizeHitSpace rebuilds the space for a new viewport and re-adds every region.
func resizeHitSpace(hs *components.HitSpaceData, width, height int) {
	if hs.Regions == nil {
		hs.Regions = map[string]*resolv.Object{}
	}
	hs.Space = resolv.NewSpace(width, height, hitCellSize, hitCellSize)
	if hs.Probe == nil {
		hs.Probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	}
	hs.Space.Add(hs.Probe)
	for _, obj := range hs.Regions {
		hs.Space.Add(obj)
	}
}

// setRegion places the named region at r, creating it with tags on first use.
// data is stored on the object for the system that owns the region.
func setRegion(hs *components.HitSpaceData, name string, r components.Rect, data interface{}, regionTags ...string) {
	if hs.Space == nil {
		return
	}
	obj, ok := hs.Regions[name]
	if !ok {
		obj = resolv.NewObject(r.X, r.Y, r.W, r.H, regionTags...)
		hs.Regions[name] = obj
		hs.Space.Add(obj)
	}
	obj.X, obj.Y, obj.W, obj.H = r.X, r.Y, r.W, r.H
	obj.Data = data
	obj.Update()
}

// removeRegion drops the named region from the space.
func removeRegion(hs *components.HitSpaceData, name string) {
	obj, ok := hs.Regions[name]
	if !ok {
		return
	}
	if hs.Space != nil {
		hs.Space.Remove(obj)
	}
	delete(hs.Regions, name)
}

// regionAt returns the region under (x, y) carrying any of regionTags. Regions
// are tried in tag order, so earlier tags win when regions overlap.
func regionAt(hs *components.HitSpaceData, x, y float64, regionTags ...string) *resolv.Object {
	if hs == nil || hs.Space == nil || hs.Probe == nil {
		return nil
	}
	hs.Probe.X, hs.Probe.Y = x, y
	hs.Probe.Update()
	for _, tag := range regionTags {
		check := hs.Probe.Check(0, 0, tag)
		if check == nil {
			continue
		}
		for _, obj := range check.Objects {
			if x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H {
				return obj
			}
		}
	}
	return nil
}

func getHitSpace(e *ecs.ECS) *components.HitSpaceData {
	entry, ok := components.HitSpace.First(e.World)
	if !ok {
		return nil
	}
	return components.HitSpace.Get(entry)
}
