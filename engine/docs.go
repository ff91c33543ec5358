/*
	opengl renderer engine

	context (glfw window, gl state, input callbacks)
	renderer
		program
			uniforms
		mesh (shared unit cube)
			vertex array, interleaved position/normal/uv buffer
		light (fixed point light)

	drawables are supplied per frame, each one is a model matrix and a
	material uploaded right before its draw call.

	everything in here has to run on the thread owning the gl context.
*/
package engine
