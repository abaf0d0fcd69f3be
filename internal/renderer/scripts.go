package renderer

// Page-side functions evaluated through rod. Each is an arrow function whose
// parameters are bound from the Go arguments.
const (
	jsHideWebdriver = `() => { Object.defineProperty(navigator, 'webdriver', { get: () => undefined }); return true; }`

	jsScanOpenGraph = `() => {
		const og = {};
		document.querySelectorAll('[property^="og:"]').forEach(el => {
			og[el.getAttribute('property').slice(3)] = el.getAttribute('content') || '';
		});
		return og;
	}`

	jsOpenWindow = `(url, name, features) => window.open(url, name, features) !== null`

	jsHasScript = `(id, src) => !!(document.getElementById(id) ||
		Array.from(document.scripts).some(s => s.src && s.src.indexOf(src) !== -1))`

	jsInjectScript = `(id, src, async) => new Promise(resolve => {
		const s = document.createElement('script');
		s.id = id;
		s.src = src;
		s.async = async;
		s.onload = () => resolve({ kind: 'load', readyState: '' });
		s.onreadystatechange = () => {
			const state = s.readyState || '';
			if (state === '' || state === 'complete') resolve({ kind: 'readystatechange', readyState: state });
		};
		s.onerror = () => resolve({ kind: 'error', readyState: '' });
		s.onabort = () => resolve({ kind: 'abort', readyState: '' });
		const first = document.getElementsByTagName('script')[0];
		if (first && first.parentNode) first.parentNode.insertBefore(s, first);
		else document.head.appendChild(s);
	})`

	jsKakaoInit = `(key) => {
		if (!window.Kakao) throw new Error('Kakao is not defined');
		if (!Kakao.isInitialized()) Kakao.init(key);
		return true;
	}`

	jsKakaoIsInitialized = `() => !!(window.Kakao && Kakao.isInitialized && Kakao.isInitialized())`

	jsKakaoSendDefault = `(feed) => { Kakao.Link.sendDefault(feed); return true; }`

	jsKakaoShareStory = `(story) => { Kakao.Story.share(story); return true; }`

	jsLegacyClipboardAvailable = `() => !!(window.clipboardData && window.clipboardData.setData)`

	jsLegacyClipboardSet = `(text) => window.clipboardData.setData('Text', text) !== false`

	jsCreateHiddenTextarea = `(id, text) => {
		const ta = document.createElement('textarea');
		ta.id = id;
		ta.value = text;
		ta.readOnly = true;
		const top = window.pageYOffset || window.scrollY || document.documentElement.scrollTop;
		ta.style.cssText = 'position: absolute; top: ' + top + 'px; left: -9999px; margin: 0; padding: 0; border: 0; font-size: 12px;';
		document.body.appendChild(ta);
		return true;
	}`

	jsSelectAll = `(id) => {
		const ta = document.getElementById(id);
		if (!ta) return false;
		ta.select();
		ta.setSelectionRange(0, ta.value.length);
		return true;
	}`

	jsRemoveElement = `(id) => {
		const el = document.getElementById(id);
		if (el && el.parentNode) el.parentNode.removeChild(el);
		return true;
	}`

	jsExecCopy = `() => {
		if (!(document.queryCommandSupported && document.queryCommandSupported('copy'))) return null;
		return document.execCommand('copy');
	}`

	jsUserAgent = `() => navigator.userAgent`
)
