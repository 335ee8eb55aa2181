package opengl

const vertexShader = `#version 330 core
layout(location = 0) in vec2 pos;
layout(location = 1) in float join;
layout(location = 2) in vec2 inst_pos;
layout(location = 3) in float thickness;
layout(location = 4) in vec2 dir;
layout(location = 5) in vec3 color0;

uniform mat4 mvp;

out vec2 local_position;
out vec2 world_position;
flat out vec2 ip;
flat out vec2 dr;
flat out float th;
flat out int tag;
flat out vec3 col;

void main() {
	vec2 n = vec2(-dir.y, dir.x) / length(dir);
	vec2 p = pos.y * dir + pos.x * n * thickness + inst_pos;
	gl_Position = mvp * vec4(p, 0.0, 1.0);

	local_position = pos;
	world_position = p;
	ip = inst_pos;
	dr = dir;
	th = thickness;
	tag = int(join + 0.5);
	col = color0;
}
` + "\x00"

const fragmentShader = `#version 330 core
in vec2 local_position;
in vec2 world_position;
flat in vec2 ip;
flat in vec2 dr;
flat in float th;
flat in int tag;
flat in vec3 col;

uniform mat4 mvp;

out vec4 frag_color;

const float aaborder = 0.00445;

float segment_distance(vec2 p, vec2 a, vec2 b) {
	vec2 ba = b - a;
	vec2 pa = p - a;
	float h = clamp(dot(pa, ba) / dot(ba, ba), 0.0, 1.0);
	return length(pa - h * ba);
}

void main() {
	vec2 a = ip - dr / 2.0;
	vec2 b = ip + dr / 2.0;
	float d = segment_distance(world_position, a, b) - th;
	if (d >= 0.0) {
		discard;
	}

	// 1 = no-first, 2 = no-second, 3 = none
	bool noFirst = tag == 1 || tag == 3;
	bool noSecond = tag == 2 || tag == 3;
	if (noFirst && local_position.y < -0.5) {
		discard;
	}
	if (noSecond && local_position.y > 0.5) {
		discard;
	}

	float border = aaborder / mvp[1][1];
	float alpha = 1.0;
	if (d > -border) {
		alpha = 1.0 - smoothstep(-border, 0.0, d);
	}
	frag_color = vec4(col, alpha);
}
` + "\x00"
