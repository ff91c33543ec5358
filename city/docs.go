/*
	procedural night city

	buildings stand on the ground plane, vehicles orbit the origin at fixed
	heights, billboards hover and spin around their vertical axis. every
	entity is a scaled unit cube, all variety comes from the model
	transform and the material.

	the package has no gl dependency, the renderer only consumes Drawables.
*/
package city
